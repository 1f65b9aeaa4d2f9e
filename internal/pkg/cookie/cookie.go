package cookie

import (
	"net/http"
	"strings"
	"time"

	"fervo/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	accessTokenPath = "/"
	// The refresh token is only ever needed by the auth endpoints.
	refreshTokenPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, accessToken, accessTokenPath, int(accessExpiry.Seconds()))
	set(c, cfg, RefreshTokenCookieName, refreshToken, refreshTokenPath, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", accessTokenPath, -1)
	set(c, cfg, RefreshTokenCookieName, "", refreshTokenPath, -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func set(c *gin.Context, cfg config.CookieConfig, name, value, path string, maxAge int) {
	sameSite := parseSameSite(cfg.SameSite)
	// Browsers drop SameSite=None cookies that are not Secure.
	secure := cfg.Secure || sameSite == http.SameSiteNoneMode

	c.SetSameSite(sameSite)
	c.SetCookie(name, value, maxAge, path, cfg.Domain, secure, true)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
