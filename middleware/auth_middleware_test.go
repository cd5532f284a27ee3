package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anklebracelet24/movieApp-ruiz/models"
	"github.com/Anklebracelet24/movieApp-ruiz/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokens *services.TokenService, adminOnly bool) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{Authenticated(tokens)}
	if adminOnly {
		handlers = append(handlers, AdminOnly())
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	r.GET("/protected", handlers...)
	return r
}

func mintToken(t *testing.T, tokens *services.TokenService, admin bool) string {
	t.Helper()
	token, err := tokens.Issue(&models.User{
		ID:      primitive.NewObjectID(),
		Email:   "user@example.com",
		IsAdmin: admin,
	})
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticatedRejectsMissingHeader(t *testing.T) {
	tokens := services.NewTokenService("secret", 0)
	w := doRequest(newProtectedRouter(tokens, false), "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAuthenticatedRejectsNonBearerHeader(t *testing.T) {
	tokens := services.NewTokenService("secret", 0)
	w := doRequest(newProtectedRouter(tokens, false), "Basic abc123")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticatedRejectsInvalidToken(t *testing.T) {
	tokens := services.NewTokenService("secret", 0)
	w := doRequest(newProtectedRouter(tokens, false), "Bearer bogus")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticatedRejectsForeignSignature(t *testing.T) {
	tokens := services.NewTokenService("secret", 0)
	foreign := mintToken(t, services.NewTokenService("other", 0), false)
	w := doRequest(newProtectedRouter(tokens, false), "Bearer "+foreign)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticatedAttachesClaims(t *testing.T) {
	tokens := services.NewTokenService("secret", 0)
	w := doRequest(newProtectedRouter(tokens, false), "Bearer "+mintToken(t, tokens, false))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestAdminOnlyRejectsRegularUser(t *testing.T) {
	tokens := services.NewTokenService("secret", 0)
	w := doRequest(newProtectedRouter(tokens, true), "Bearer "+mintToken(t, tokens, false))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Action Forbidden")
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	tokens := services.NewTokenService("secret", 0)
	w := doRequest(newProtectedRouter(tokens, true), "Bearer "+mintToken(t, tokens, true))

	assert.Equal(t, http.StatusOK, w.Code)
}

// AdminOnly without a preceding Authenticated is a wiring error; it must fail
// closed rather than admit the request.
func TestAdminOnlyFailsClosedWithoutClaims(t *testing.T) {
	r := gin.New()
	r.GET("/protected", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doRequest(r, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Action Forbidden")
}
