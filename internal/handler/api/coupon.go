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

type CouponHandler struct {
	cmds   commands.CouponCommands
	wallet queries.WalletQueries
}

func NewCouponHandler(cmds commands.CouponCommands, wallet queries.WalletQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, wallet: wallet}
}

// @Summary Look up a presented coupon
// @Tags partner
// @Security BearerAuth
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} queries.CouponLookupView
// @Failure 404 {object} httperr.Response
// @Router /api/partner/coupons/{code} [get]
func (h *CouponHandler) Lookup(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	view, err := h.wallet.LookupCoupon(c.Request.Context(), partnerID, c.Param("code"))
	if err != nil {
		abortWithMapped(c, err, "lookup coupon")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Redeem a coupon at the caller's venue
// @Tags partner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RedeemCouponRequest true "Coupon code"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/partner/coupons/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := h.cmds.Redeem(c.Request.Context(), partnerID, req.Code)
	if err != nil {
		abortWithMapped(c, err, "redeem coupon")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemResult(res))
}
