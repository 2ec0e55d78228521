package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempustours/tempus-backend/internal/stores"
)

func setupCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := stores.NewCatalogStore()

	router := gin.New()
	civs := router.Group("/api/civilizations")
	civs.GET("", GetCivilizations(catalog))
	civs.GET("/:id", GetCivilization(catalog))
	civs.GET("/:id/tours", GetCivilizationTours(catalog))

	tours := router.Group("/api/tours")
	tours.GET("", GetTours(catalog))
	tours.GET("/featured", GetFeaturedTours(catalog))
	tours.GET("/search", SearchTours(catalog))
	tours.GET("/:id", GetTour(catalog))

	return router
}

func decodeTours(t *testing.T, body []byte) []struct {
	ID             string  `json:"id"`
	CivilizationID string  `json:"civilizationId"`
	Price          float64 `json:"price"`
	Duration       int     `json:"duration"`
} {
	t.Helper()

	var tours []struct {
		ID             string  `json:"id"`
		CivilizationID string  `json:"civilizationId"`
		Price          float64 `json:"price"`
		Duration       int     `json:"duration"`
	}
	require.NoError(t, json.Unmarshal(body, &tours))
	return tours
}

func TestGetCivilizations(t *testing.T) {
	router := setupCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/civilizations", nil)
	require.Equal(t, 200, w.Code)

	var civs []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &civs))
	assert.Len(t, civs, 5)

	w = doJSON(t, router, http.MethodGet, "/api/civilizations/egypt", nil)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/civilizations/atlantis", nil)
	assert.Equal(t, 404, w.Code)
}

func TestGetCivilizationTours(t *testing.T) {
	router := setupCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/civilizations/egypt/tours", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeTours(t, w.Body.Bytes()), 2)

	w = doJSON(t, router, http.MethodGet, "/api/civilizations/atlantis/tours", nil)
	assert.Equal(t, 404, w.Code)
}

func TestGetToursWithFilters(t *testing.T) {
	router := setupCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/tours", nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, decodeTours(t, w.Body.Bytes()), 8)

	w = doJSON(t, router, http.MethodGet, "/api/tours?maxPrice=700", nil)
	require.Equal(t, 200, w.Code)
	for _, tour := range decodeTours(t, w.Body.Bytes()) {
		assert.LessOrEqual(t, tour.Price, 700.0)
	}

	w = doJSON(t, router, http.MethodGet, "/api/tours?minDays=90", nil)
	require.Equal(t, 200, w.Code)
	tours := decodeTours(t, w.Body.Bytes())
	require.Len(t, tours, 2)
	for _, tour := range tours {
		assert.Equal(t, "china", tour.CivilizationID)
	}
}

func TestGetFeaturedToursEndpoint(t *testing.T) {
	router := setupCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/tours/featured", nil)
	require.Equal(t, 200, w.Code)

	tours := decodeTours(t, w.Body.Bytes())
	require.Len(t, tours, 3)
	assert.Equal(t, "egypt-1", tours[0].ID)
}

func TestSearchToursEndpoint(t *testing.T) {
	router := setupCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/tours/search?q=pyramid", nil)
	require.Equal(t, 200, w.Code)
	assert.NotEmpty(t, decodeTours(t, w.Body.Bytes()))

	w = doJSON(t, router, http.MethodGet, "/api/tours/search", nil)
	assert.Equal(t, 400, w.Code)
}

func TestGetTourEndpoint(t *testing.T) {
	router := setupCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/tours/egypt-1", nil)
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/tours/egypt-99", nil)
	assert.Equal(t, 404, w.Code)
}
