package stores

import (
	"math"

	"github.com/tempustours/tempus-backend/internal/models"
)

// TravelStats summarizes a user's booking record for the travel stats
// screen. All committed bookings count, cancelled ones included.
type TravelStats struct {
	TotalBookings        int            `json:"totalBookings"`
	TotalSpent           float64        `json:"totalSpent"`
	TotalDays            int            `json:"totalDays"`
	VisitedCivilizations []string       `json:"visitedCivilizations"`
	DestinationCounts    map[string]int `json:"destinationCounts"`
}

// ComputeTravelStats derives travel statistics from a user's bookings
// and the tour catalog. Travel days come from the booked date range
// when one was selected, otherwise from the tour's nominal duration.
// Bookings for tours no longer in the catalog are skipped.
func ComputeTravelStats(bookings []models.Booking, catalog *CatalogStore) TravelStats {
	stats := TravelStats{
		TotalBookings:        len(bookings),
		VisitedCivilizations: []string{},
		DestinationCounts:    make(map[string]int),
	}

	if len(bookings) == 0 {
		return stats
	}

	for _, civ := range catalog.Civilizations() {
		stats.DestinationCounts[civ.ID] = 0
	}

	visited := make(map[string]bool)
	for _, booking := range bookings {
		tour, err := catalog.Tour(booking.TourID)
		if err != nil {
			continue
		}

		if !visited[tour.CivilizationID] {
			visited[tour.CivilizationID] = true
			stats.VisitedCivilizations = append(stats.VisitedCivilizations, tour.CivilizationID)
		}
		stats.DestinationCounts[tour.CivilizationID]++
		stats.TotalSpent += booking.TotalPrice

		if booking.TravelDates != nil {
			days := booking.TravelDates.EndDate.Sub(booking.TravelDates.StartDate).Hours() / 24
			stats.TotalDays += int(math.Ceil(math.Abs(days)))
		} else {
			stats.TotalDays += tour.Duration
		}
	}

	return stats
}
