package api

import (
	"net/http"

	"fervo/internal/handler/middleware"
	"fervo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	analytics queries.AnalyticsQueries
	feedback  queries.FeedbackQueries
}

func NewInsightsHandler(analytics queries.AnalyticsQueries, feedback queries.FeedbackQueries) *InsightsHandler {
	return &InsightsHandler{analytics: analytics, feedback: feedback}
}

// @Summary Partner analytics
// @Description Venue totals plus a per-event breakdown
// @Tags partner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.PartnerAnalyticsView
// @Router /api/partner/analytics [get]
func (h *InsightsHandler) GetAnalytics(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	view, err := h.analytics.GetPartnerAnalytics(c.Request.Context(), partnerID)
	if err != nil {
		abortWithMapped(c, err, "get analytics")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Summarize event feedback
// @Description One model call over the most recent rating comments
// @Tags partner
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} queries.FeedbackSummaryView
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/partner/events/{id}/feedback-summary [post]
func (h *InsightsHandler) SummarizeFeedback(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.feedback.SummarizeFeedback(c.Request.Context(), partnerID, eventID)
	if err != nil {
		abortWithMapped(c, err, "summarize feedback")
		return
	}
	c.JSON(http.StatusOK, view)
}
