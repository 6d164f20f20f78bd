package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schulhof.app/gradebook/internal/model"
	"schulhof.app/gradebook/internal/token"
)

func newAuthRouter(tokens *token.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(tokens)

	router := gin.New()
	router.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
		})
	})
	router.GET("/admin", m.RequireAuth(), m.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	tokens := token.NewProvider("test-secret", time.Hour)
	router := newAuthRouter(tokens)

	signed, err := tokens.Issue("alice", []string{string(model.RoleUser)})
	require.NoError(t, err)

	rec := doRequest(router, "/me", signed)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := newAuthRouter(token.NewProvider("test-secret", time.Hour))

	rec := doRequest(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	router := newAuthRouter(token.NewProvider("test-secret", time.Hour))

	rec := doRequest(router, "/me", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := token.NewProvider("test-secret", -time.Minute)
	router := newAuthRouter(token.NewProvider("test-secret", time.Hour))

	signed, err := expired.Issue("alice", nil)
	require.NoError(t, err)

	rec := doRequest(router, "/me", signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token expired")
}

func TestRequireAdmin(t *testing.T) {
	tokens := token.NewProvider("test-secret", time.Hour)
	router := newAuthRouter(tokens)

	adminToken, err := tokens.Issue("root", []string{string(model.RoleAdmin)})
	require.NoError(t, err)
	userToken, err := tokens.Issue("alice", []string{string(model.RoleUser)})
	require.NoError(t, err)

	rec := doRequest(router, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
