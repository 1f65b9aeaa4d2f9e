package api

import (
	"net/http"

	reqdto "fervo/internal/handler/dto/request"
	resdto "fervo/internal/handler/dto/response"
	"fervo/internal/handler/httperr"
	"fervo/internal/handler/middleware"
	"fervo/internal/pkg/config"
	"fervo/internal/pkg/cookie"
	"fervo/internal/pkg/errs"
	"fervo/internal/pkg/jwt"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Register
// @Description Create a user or partner account. Partners must include a venue profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithMapped(c, err, "register")
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusCreated, resdto.AuthResponse{
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
		User:         resdto.FromUserSnapshot(result.User),
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		abortWithMapped(c, err, "login")
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.AuthResponse{
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
		User:         resdto.FromUserSnapshot(result.User),
	})
}

// @Summary Refresh tokens
// @Description Issue a new token pair from the refresh cookie or body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		// refresh_token is optional in the body when the cookie is present
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		if errs.IsAny(err, commands.ErrTokenValidation, commands.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
			return
		}
		abortWithMapped(c, err, "refresh token")
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.AuthResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// @Summary User logout
// @Description Clear the auth cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		abortWithMapped(c, err, "get current user")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update profile
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/me [patch]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	snap, err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		abortWithMapped(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserSnapshot(snap))
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	if pair == nil || h.jwtService == nil {
		return
	}
	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
}
