package api

import (
	"io"
	"net/http"

	reqdto "fervo/internal/handler/dto/request"
	resdto "fervo/internal/handler/dto/response"
	"fervo/internal/handler/middleware"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBytes = 64 << 10

type BillingHandler struct {
	cmds commands.SubscriptionCommands
	q    queries.SubscriptionQueries
}

func NewBillingHandler(cmds commands.SubscriptionCommands, q queries.SubscriptionQueries) *BillingHandler {
	return &BillingHandler{cmds: cmds, q: q}
}

// @Summary Current subscription
// @Tags partner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.SubscriptionView
// @Failure 404 {object} httperr.Response
// @Router /api/partner/subscription [get]
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	view, err := h.q.GetSubscription(c.Request.Context(), partnerID)
	if err != nil {
		abortWithMapped(c, err, "get subscription")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Start a hosted checkout
// @Tags partner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Plan"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/partner/subscription/checkout [post]
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	session, err := h.cmds.CreateCheckoutSession(c.Request.Context(), partnerID, req.Plan)
	if err != nil {
		abortWithMapped(c, err, "create checkout session")
		return
	}
	c.JSON(http.StatusCreated, resdto.CheckoutResponse{SessionID: session.ID, URL: session.URL})
}

// @Summary Stripe webhook
// @Tags billing
// @Accept json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 "OK"
// @Failure 400 {object} httperr.Response
// @Router /api/billing/webhook [post]
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		abortWithMapped(c, err, "handle webhook")
		return
	}
	c.Status(http.StatusOK)
}
