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

// EngagementHandler covers what an attendee does at an event: check in, rate, share.
type EngagementHandler struct {
	checkIns commands.CheckInCommands
	ratings  commands.RatingCommands
	shares   commands.ShareCommands
	ratingQ  queries.RatingQueries
}

func NewEngagementHandler(checkIns commands.CheckInCommands, ratings commands.RatingCommands, shares commands.ShareCommands, ratingQ queries.RatingQueries) *EngagementHandler {
	return &EngagementHandler{checkIns: checkIns, ratings: ratings, shares: shares, ratingQ: ratingQ}
}

// @Summary Check in with a scanned QR payload
// @Tags engagement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckInRequest true "Scanned payload"
// @Success 201 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/check-ins [post]
func (h *EngagementHandler) CheckIn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := h.checkIns.CheckIn(c.Request.Context(), userID, req.Payload)
	if err != nil {
		abortWithMapped(c, err, "check in")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckInResult(res))
}

// @Summary Rate an attended event
// @Description Resubmitting replaces the previous rating
// @Tags engagement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reqdto.SubmitRatingRequest true "Rating"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/rating [put]
func (h *EngagementHandler) SubmitRating(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := h.ratings.Submit(c.Request.Context(), userID, req.ToCommand(eventID))
	if err != nil {
		abortWithMapped(c, err, "submit rating")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingResult(res))
}

// @Summary Caller's rating for an event
// @Tags engagement
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} queries.RatingView
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/rating [get]
func (h *EngagementHandler) GetMyRating(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.ratingQ.GetMine(c.Request.Context(), eventID, userID)
	if err != nil {
		abortWithMapped(c, err, "get own rating")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete own rating
// @Tags engagement
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/rating [delete]
func (h *EngagementHandler) DeleteMyRating(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.ratings.DeleteOwn(c.Request.Context(), userID, eventID); err != nil {
		abortWithMapped(c, err, "delete rating")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List ratings of an event
// @Tags directory
// @Produce json
// @Param id path string true "Event ID"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ListResponse[queries.RatingListItem]
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/ratings [get]
func (h *EngagementHandler) ListRatings(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.ratingQ.ListByEvent(c.Request.Context(), eventID, cursor, queries.ValidateLimit(intQuery(c, "limit", 0)))
	if err != nil {
		abortWithMapped(c, err, "list ratings")
		return
	}
	resp := resdto.ListResponse[*queries.RatingListItem]{Items: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Record a share
// @Description Awards FervoCoins at the event's venue unless sharing is disabled or the event ended
// @Tags engagement
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.ShareResponse
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/shares [post]
func (h *EngagementHandler) Share(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	res, err := h.shares.RecordShare(c.Request.Context(), userID, eventID)
	if err != nil {
		abortWithMapped(c, err, "record share")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShareResult(res))
}
