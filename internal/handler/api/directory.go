package api

import (
	"net/http"

	reqdto "fervo/internal/handler/dto/request"
	resdto "fervo/internal/handler/dto/response"
	"fervo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the public venue and event directory.
type DirectoryHandler struct {
	q queries.DirectoryQueries
}

func NewDirectoryHandler(q queries.DirectoryQueries) *DirectoryHandler {
	return &DirectoryHandler{q: q}
}

// @Summary List venues
// @Description Map marker filtering by bounding box, category, name search, live and upcoming events
// @Tags directory
// @Produce json
// @Param min_lat query number false "South edge"
// @Param max_lat query number false "North edge"
// @Param min_lng query number false "West edge"
// @Param max_lng query number false "East edge"
// @Param category query string false "Venue category"
// @Param q query string false "Name search"
// @Param live_now query bool false "Only venues with an event in progress"
// @Param has_upcoming query bool false "Only venues with an event not yet ended"
// @Param limit query int false "Max items"
// @Success 200 {object} resdto.ListResponse[queries.VenueView]
// @Failure 400 {object} httperr.Response
// @Router /api/venues [get]
func (h *DirectoryHandler) ListVenues(c *gin.Context) {
	var q reqdto.VenueListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	venues, err := h.q.ListVenues(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWithMapped(c, err, "list venues")
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.VenueView]{Items: venues})
}

// @Summary Get venue
// @Description Venue profile with its upcoming events
// @Tags directory
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} queries.VenueDetailView
// @Failure 404 {object} httperr.Response
// @Router /api/venues/{id} [get]
func (h *DirectoryHandler) GetVenue(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetVenue(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, "get venue")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List venue events
// @Tags directory
// @Produce json
// @Param id path string true "Venue ID"
// @Param include_past query bool false "Include ended events"
// @Success 200 {object} resdto.ListResponse[queries.EventView]
// @Failure 404 {object} httperr.Response
// @Router /api/venues/{id}/events [get]
func (h *DirectoryHandler) ListVenueEvents(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	events, err := h.q.ListVenueEvents(c.Request.Context(), id, c.Query("include_past") == "true")
	if err != nil {
		abortWithMapped(c, err, "list venue events")
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.EventView]{Items: events})
}

// @Summary List events
// @Description Upcoming events across venues ordered by start time, keyset paginated
// @Tags directory
// @Produce json
// @Param from query string false "RFC3339 window start"
// @Param to query string false "RFC3339 window end"
// @Param genre query string false "Music genre"
// @Param free_only query bool false "Only free events"
// @Param partner_id query string false "Venue ID"
// @Param after query string false "Cursor"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.ListResponse[queries.EventView]
// @Failure 400 {object} httperr.Response
// @Router /api/events [get]
func (h *DirectoryHandler) ListEvents(c *gin.Context) {
	var q reqdto.EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	events, next, err := h.q.ListEvents(c.Request.Context(), q.ToFilter(), q.Cursor(), queries.ValidateLimit(q.Limit))
	if err != nil {
		abortWithMapped(c, err, "list events")
		return
	}
	resp := resdto.ListResponse[*queries.EventView]{Items: events}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get event
// @Tags directory
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} queries.EventView
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id} [get]
func (h *DirectoryHandler) GetEvent(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetEvent(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, "get event")
		return
	}
	c.JSON(http.StatusOK, view)
}
