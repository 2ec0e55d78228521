package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempustours/tempus-backend/internal/middleware"
	"github.com/tempustours/tempus-backend/internal/services"
	"github.com/tempustours/tempus-backend/internal/stores"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	snapshots, err := services.NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	users, err := stores.NewUserStore(snapshots)
	require.NoError(t, err)

	router := gin.New()
	auth := router.Group("/api/auth")
	auth.POST("/register", Register(users))
	auth.POST("/login", Login(users))
	auth.POST("/guest", GuestLogin(users))

	protected := router.Group("/api/users")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/profile", GetProfile(users))

	return router
}

func newRecorder(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
		IsGuest  bool   `json:"isGuest"`
	} `json:"user"`
}

func TestLogin(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "marcus",
		"password": "password123",
	})
	require.Equal(t, 200, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "marcus", resp.User.Username)
	assert.False(t, resp.User.IsGuest)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "marcus",
		"password": "wrong",
	})
	assert.Equal(t, 401, w.Code)
}

func TestRegister(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username":    "octavia",
		"password":    "secret99",
		"name":        "Octavia Minor",
		"citizenship": "Roman",
	})
	require.Equal(t, 201, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "octavia", resp.User.Username)

	// Duplicate usernames conflict
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username":    "octavia",
		"password":    "secret99",
		"name":        "Someone Else",
		"citizenship": "Greek",
	})
	assert.Equal(t, 409, w.Code)

	// Short passwords are rejected
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "brutus",
		"password": "abc",
		"name":     "Brutus",
	})
	assert.Equal(t, 400, w.Code)
}

func TestGuestLogin(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/guest", nil)
	require.Equal(t, 200, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsGuest)
	assert.Equal(t, "Roman Traveler", resp.User.Name)
}

func TestTokenGrantsAccessToProtectedRoutes(t *testing.T) {
	router := setupAuthRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "marcus",
		"password": "password123",
	})
	require.Equal(t, 200, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req, err := http.NewRequest(http.MethodGet, "/api/users/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+resp.Token)

	rec := newRecorder(router, req)
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Marcus Aurelius")
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := setupAuthRouter(t)

	req, err := http.NewRequest(http.MethodGet, "/api/users/profile", nil)
	require.NoError(t, err)

	rec := newRecorder(router, req)
	assert.Equal(t, 401, rec.Code)

	req, err = http.NewRequest(http.MethodGet, "/api/users/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec = newRecorder(router, req)
	assert.Equal(t, 401, rec.Code)
}
