package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NoCookie(t *testing.T) {
	codec := NewCodec(testSecret)
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, Resolve(r, codec), "request without a session cookie should resolve to anonymous")
}

func TestResolve_ValidSession(t *testing.T) {
	codec := NewCodec(testSecret)

	token, err := codec.Mint("test@example.com", "Test User", "")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Cookie", "session="+token)

	claims := Resolve(r, codec)
	require.NotNil(t, claims)
	assert.Equal(t, "test@example.com", claims.Email)
}

func TestResolve_GarbageCookie(t *testing.T) {
	codec := NewCodec(testSecret)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Cookie", "session=garbage")

	assert.Nil(t, Resolve(r, codec), "invalid session should resolve to anonymous, not an error")
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	codec := NewCodec(testSecret)

	router := gin.New()
	router.GET("/protected", RequireAuth(codec), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_PassesIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	codec := NewCodec(testSecret)

	token, err := codec.Mint("test@example.com", "Test User", "https://example.com/p.png")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", RequireAuth(codec), func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "name": claims.Name})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Cookie", "session="+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
}
