package stores

import (
	"strings"

	"github.com/tempustours/tempus-backend/internal/models"
)

// CatalogStore serves the static civilizations and tours catalog. The
// catalog is read-only after construction, so no locking is needed.
type CatalogStore struct {
	civilizations []models.Civilization
	tours         []models.Tour
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		civilizations: civilizations,
		tours:         tours,
	}
}

// Civilizations returns every destination in the catalog
func (s *CatalogStore) Civilizations() []models.Civilization {
	return s.civilizations
}

// Civilization looks up a destination by id
func (s *CatalogStore) Civilization(id string) (models.Civilization, error) {
	for _, civ := range s.civilizations {
		if civ.ID == id {
			return civ, nil
		}
	}
	return models.Civilization{}, ErrCivilizationNotFound
}

// Tours returns every tour package in the catalog
func (s *CatalogStore) Tours() []models.Tour {
	return s.tours
}

// Tour looks up a tour package by id
func (s *CatalogStore) Tour(id string) (models.Tour, error) {
	for _, tour := range s.tours {
		if tour.ID == id {
			return tour, nil
		}
	}
	return models.Tour{}, ErrTourNotFound
}

// ToursByCivilization returns the tours offered for one destination
func (s *CatalogStore) ToursByCivilization(civilizationID string) []models.Tour {
	result := []models.Tour{}
	for _, tour := range s.tours {
		if tour.CivilizationID == civilizationID {
			result = append(result, tour)
		}
	}
	return result
}

// FeaturedTours returns the tours highlighted on the home screen
func (s *CatalogStore) FeaturedTours() []models.Tour {
	featured := []string{"egypt-1", "greece-2", "china-1"}

	result := []models.Tour{}
	for _, id := range featured {
		if tour, err := s.Tour(id); err == nil {
			result = append(result, tour)
		}
	}
	return result
}

// SearchTours matches the query against tour names and descriptions,
// case-insensitively.
func (s *CatalogStore) SearchTours(query string) []models.Tour {
	term := strings.ToLower(query)

	result := []models.Tour{}
	for _, tour := range s.tours {
		if strings.Contains(strings.ToLower(tour.Name), term) ||
			strings.Contains(strings.ToLower(tour.Description), term) {
			result = append(result, tour)
		}
	}
	return result
}

// FilterToursByPrice returns tours priced within [minPrice, maxPrice]
func (s *CatalogStore) FilterToursByPrice(minPrice, maxPrice float64) []models.Tour {
	result := []models.Tour{}
	for _, tour := range s.tours {
		if tour.Price >= minPrice && tour.Price <= maxPrice {
			result = append(result, tour)
		}
	}
	return result
}

// FilterToursByDuration returns tours lasting between minDays and maxDays
func (s *CatalogStore) FilterToursByDuration(minDays, maxDays int) []models.Tour {
	result := []models.Tour{}
	for _, tour := range s.tours {
		if tour.Duration >= minDays && tour.Duration <= maxDays {
			result = append(result, tour)
		}
	}
	return result
}
