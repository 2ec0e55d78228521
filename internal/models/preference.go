package models

// ThemePreference controls the client's light/dark appearance
type ThemePreference struct {
	IsDarkMode   bool `json:"isDarkMode"`
	FollowSystem bool `json:"followSystem"`
}

// DefaultThemePreference returns the preference used before a user has
// chosen anything: follow the device theme.
func DefaultThemePreference() ThemePreference {
	return ThemePreference{
		IsDarkMode:   false,
		FollowSystem: true,
	}
}
