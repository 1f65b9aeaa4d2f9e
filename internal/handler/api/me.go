package api

import (
	"net/http"

	reqdto "fervo/internal/handler/dto/request"
	resdto "fervo/internal/handler/dto/response"
	"fervo/internal/handler/middleware"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// MeHandler serves the signed-in user's own collections.
type MeHandler struct {
	wallet     queries.WalletQueries
	checkIns   queries.CheckInQueries
	favoritesQ queries.FavoriteQueries
	favorites  commands.FavoriteCommands
	pushTokens commands.PushTokenCommands
}

func NewMeHandler(wallet queries.WalletQueries, checkIns queries.CheckInQueries, favoritesQ queries.FavoriteQueries, favorites commands.FavoriteCommands, pushTokens commands.PushTokenCommands) *MeHandler {
	return &MeHandler{wallet: wallet, checkIns: checkIns, favoritesQ: favoritesQ, favorites: favorites, pushTokens: pushTokens}
}

// @Summary FervoCoin balances per venue
// @Tags me
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.CoinBalanceView]
// @Router /api/me/coins [get]
func (h *MeHandler) ListBalances(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	items, err := h.wallet.ListBalances(c.Request.Context(), userID)
	if err != nil {
		abortWithMapped(c, err, "list balances")
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.CoinBalanceView]{Items: items})
}

// @Summary Own coupons
// @Tags me
// @Security BearerAuth
// @Produce json
// @Param status query string false "active or redeemed"
// @Success 200 {object} resdto.ListResponse[queries.CouponView]
// @Failure 400 {object} httperr.Response
// @Router /api/me/coupons [get]
func (h *MeHandler) ListCoupons(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	items, err := h.wallet.ListCoupons(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		abortWithMapped(c, err, "list coupons")
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.CouponView]{Items: items})
}

// @Summary Check-in history
// @Tags me
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max items"
// @Success 200 {object} resdto.ListResponse[queries.CheckInHistoryItem]
// @Router /api/me/check-ins [get]
func (h *MeHandler) ListCheckIns(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	items, err := h.checkIns.ListMyCheckIns(c.Request.Context(), userID, queries.ValidateLimit(intQuery(c, "limit", 0)))
	if err != nil {
		abortWithMapped(c, err, "list check-ins")
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.CheckInHistoryItem]{Items: items})
}

// @Summary Favorite venues
// @Tags me
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.VenueView]
// @Router /api/me/favorites [get]
func (h *MeHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	items, err := h.favoritesQ.ListFavoriteVenues(c.Request.Context(), userID)
	if err != nil {
		abortWithMapped(c, err, "list favorites")
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.VenueView]{Items: items})
}

// @Summary Favorite a venue
// @Tags me
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/me/favorites/{id} [put]
func (h *MeHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	venueID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.favorites.Add(c.Request.Context(), userID, venueID); err != nil {
		abortWithMapped(c, err, "add favorite")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Unfavorite a venue
// @Tags me
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204 "No Content"
// @Router /api/me/favorites/{id} [delete]
func (h *MeHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	venueID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.favorites.Remove(c.Request.Context(), userID, venueID); err != nil {
		abortWithMapped(c, err, "remove favorite")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Register an Expo push token
// @Tags me
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.PushTokenRequest true "Token"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/me/push-tokens [post]
func (h *MeHandler) RegisterPushToken(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.pushTokens.Register(c.Request.Context(), userID, req.Token); err != nil {
		abortWithMapped(c, err, "register push token")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove an Expo push token
// @Tags me
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.PushTokenRequest true "Token"
// @Success 204 "No Content"
// @Router /api/me/push-tokens [delete]
func (h *MeHandler) RemovePushToken(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.pushTokens.Remove(c.Request.Context(), userID, req.Token); err != nil {
		abortWithMapped(c, err, "remove push token")
		return
	}
	c.Status(http.StatusNoContent)
}
