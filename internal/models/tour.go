package models

// Civilization is a destination in the tour catalog
type Civilization struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	LongDescription    string   `json:"longDescription"`
	Regions            []string `json:"regions"`
	AccentColor        string   `json:"accentColor"`
	KeyAttractions     []string `json:"keyAttractions"`
	LocalCurrency      string   `json:"localCurrency"`
	TravelTimeFromRome string   `json:"travelTimeFromRome"`
	DangerLevel        string   `json:"dangerLevel"`
	BestSeasonToVisit  string   `json:"bestSeasonToVisit"`
	Image              string   `json:"image"`
}

// Review is a traveler review attached to a tour
type Review struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Tour is a bookable tour package. Price is per person, in denarii.
type Tour struct {
	ID              string   `json:"id"`
	CivilizationID  string   `json:"civilizationId"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Duration        int      `json:"duration"`
	Price           float64  `json:"price"`
	Difficulty      string   `json:"difficulty"`
	Included        []string `json:"included"`
	Highlights      []string `json:"highlights"`
	StartingPoint   string   `json:"startingPoint"`
	MaxTravelers    int      `json:"maxTravelers"`
	Image           string   `json:"image"`
	Reviews         []Review `json:"reviews"`
}
