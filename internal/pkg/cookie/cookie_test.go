//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fervo/internal/pkg/config"
	"fervo/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookiesByName(w *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestSetTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cookie.SetTokenCookies(c, config.CookieConfig{SameSite: "Strict"}, "acc", "ref", 15*time.Minute, 7*24*time.Hour)

	got := cookiesByName(w)
	require.Contains(t, got, cookie.AccessTokenCookieName)
	require.Contains(t, got, cookie.RefreshTokenCookieName)

	access := got[cookie.AccessTokenCookieName]
	assert.Equal(t, "acc", access.Value)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, 900, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)

	refresh := got[cookie.RefreshTokenCookieName]
	assert.Equal(t, "ref", refresh.Value)
	assert.Equal(t, "/api/auth", refresh.Path)
	assert.Equal(t, 7*24*3600, refresh.MaxAge)
}

func TestSameSiteNoneForcesSecure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cookie.SetTokenCookies(c, config.CookieConfig{SameSite: "none", Secure: false}, "acc", "ref", time.Minute, time.Hour)

	for _, ck := range w.Result().Cookies() {
		assert.True(t, ck.Secure, ck.Name)
		assert.Equal(t, http.SameSiteNoneMode, ck.SameSite, ck.Name)
	}
}

func TestClearTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cookie.ClearTokenCookies(c, config.CookieConfig{})

	got := cookiesByName(w)
	require.Len(t, got, 2)
	for _, ck := range got {
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
	assert.Equal(t, "/api/auth", got[cookie.RefreshTokenCookieName].Path)
}

func TestGetTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookie.RefreshTokenCookieName, Value: "ref"})

	assert.Equal(t, "ref", cookie.GetRefreshToken(c))
	assert.Empty(t, cookie.GetAccessToken(c))
}
