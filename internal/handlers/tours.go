package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tempustours/tempus-backend/internal/stores"
)

// GetCivilizations lists every destination in the catalog
func GetCivilizations(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, catalog.Civilizations())
	}
}

// GetCivilization retrieves a single destination
func GetCivilization(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		civ, err := catalog.Civilization(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Civilization not found"})
			return
		}

		c.JSON(200, civ)
	}
}

// GetCivilizationTours lists the tours offered for one destination
func GetCivilizationTours(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := catalog.Civilization(c.Param("id")); err != nil {
			c.JSON(404, gin.H{"error": "Civilization not found"})
			return
		}

		c.JSON(200, catalog.ToursByCivilization(c.Param("id")))
	}
}

// GetTours lists tours, optionally narrowed by price or duration range
func GetTours(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("minPrice") != "" || c.Query("maxPrice") != "" {
			minPrice := parseFloatQuery(c, "minPrice", 0)
			maxPrice := parseFloatQuery(c, "maxPrice", 1e12)
			c.JSON(200, catalog.FilterToursByPrice(minPrice, maxPrice))
			return
		}

		if c.Query("minDays") != "" || c.Query("maxDays") != "" {
			minDays := parseIntQuery(c, "minDays", 0)
			maxDays := parseIntQuery(c, "maxDays", 1<<30)
			c.JSON(200, catalog.FilterToursByDuration(minDays, maxDays))
			return
		}

		c.JSON(200, catalog.Tours())
	}
}

// GetFeaturedTours lists the tours highlighted on the home screen
func GetFeaturedTours(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, catalog.FeaturedTours())
	}
}

// SearchTours matches tours by name or description
func SearchTours(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(400, gin.H{"error": "Query parameter q is required"})
			return
		}

		c.JSON(200, catalog.SearchTours(query))
	}
}

// GetTour retrieves a single tour package
func GetTour(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tour, err := catalog.Tour(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Tour not found"})
			return
		}

		c.JSON(200, tour)
	}
}

func parseFloatQuery(c *gin.Context, name string, fallback float64) float64 {
	value, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return fallback
	}
	return value
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
