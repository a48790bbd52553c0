package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/config"
	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(tokens services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", Auth(tokens), func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, identity)
	})
	return router
}

func newAuthTestTokens(expiration time.Duration) services.TokenService {
	return services.NewTokenService(config.JWTConfig{
		Secret:     []byte("test-secret"),
		Expiration: expiration,
		Issuer:     "blogapi",
		Audience:   "blogapi-clients",
	})
}

func TestAuthMissingHeader(t *testing.T) {
	router := authTestRouter(newAuthTestTokens(time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthNotBearer(t *testing.T) {
	router := authTestRouter(newAuthTestTokens(time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	router := authTestRouter(newAuthTestTokens(time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthExpiredTokenDistinguished(t *testing.T) {
	tokens := newAuthTestTokens(-time.Minute)
	router := authTestRouter(tokens)

	tokenString, err := tokens.Issue(models.Identity{UserID: 1, Username: "alice", Role: models.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthValidTokenSetsIdentity(t *testing.T) {
	tokens := newAuthTestTokens(time.Hour)
	router := authTestRouter(tokens)

	tokenString, err := tokens.Issue(models.Identity{UserID: 7, Username: "alice", Role: models.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestRequestIDAssigned(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDPreserved(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied", w.Header().Get(RequestIDHeader))
}
