package api

import (
	"encoding/base64"
	"net/http"

	reqdto "fervo/internal/handler/dto/request"
	resdto "fervo/internal/handler/dto/response"
	"fervo/internal/handler/middleware"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 8 << 20

// PartnerHandler serves the venue owner's management surface.
// Every route sits behind RequireAuth and RequirePartner; the caller id is the venue id.
type PartnerHandler struct {
	venues    commands.VenueCommands
	events    commands.EventCommands
	directory queries.DirectoryQueries
	checkIns  queries.CheckInQueries
}

func NewPartnerHandler(venues commands.VenueCommands, events commands.EventCommands, directory queries.DirectoryQueries, checkIns queries.CheckInQueries) *PartnerHandler {
	return &PartnerHandler{venues: venues, events: events, directory: directory, checkIns: checkIns}
}

// @Summary Update venue profile
// @Tags partner
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.VenueRequest true "Venue profile"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/partner/venue [put]
func (h *PartnerHandler) UpdateVenue(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.venues.UpdateProfile(c.Request.Context(), partnerID, req.ToParams()); err != nil {
		abortWithMapped(c, err, "update venue")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload venue image
// @Tags partner
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "jpeg, png or webp"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/partner/venue/image [post]
func (h *PartnerHandler) UploadVenueImage(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes)
	fh, err := c.FormFile("image")
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	file, err := fh.Open()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	defer file.Close()

	url, err := h.venues.UploadImage(c.Request.Context(), partnerID, fh.Filename, file)
	if err != nil {
		abortWithMapped(c, err, "upload venue image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// @Summary List own events
// @Tags partner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.EventView]
// @Router /api/partner/events [get]
func (h *PartnerHandler) ListEvents(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	events, err := h.directory.ListOwnEvents(c.Request.Context(), partnerID)
	if err != nil {
		abortWithMapped(c, err, "list own events")
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.EventView]{Items: events})
}

// @Summary Create event
// @Tags partner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.EventRequest true "Event"
// @Success 201 {object} queries.EventView
// @Failure 400 {object} httperr.Response
// @Router /api/partner/events [post]
func (h *PartnerHandler) CreateEvent(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := h.events.Create(c.Request.Context(), partnerID, req.ToParams())
	if err != nil {
		abortWithMapped(c, err, "create event")
		return
	}
	view, err := h.directory.GetEvent(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, "load created event")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update event
// @Tags partner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reqdto.EventRequest true "Event"
// @Success 200 {object} queries.EventView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/partner/events/{id} [put]
func (h *PartnerHandler) UpdateEvent(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.events.Update(c.Request.Context(), partnerID, eventID, req.ToParams()); err != nil {
		abortWithMapped(c, err, "update event")
		return
	}
	view, err := h.directory.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		abortWithMapped(c, err, "load updated event")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete event
// @Tags partner
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/partner/events/{id} [delete]
func (h *PartnerHandler) DeleteEvent(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.events.Delete(c.Request.Context(), partnerID, eventID); err != nil {
		abortWithMapped(c, err, "delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Regenerate check-in token
// @Description Invalidates every printed QR code of the event
// @Tags partner
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/partner/events/{id}/check-in-token [post]
func (h *PartnerHandler) RegenerateCheckInToken(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.events.RegenerateCheckInToken(c.Request.Context(), partnerID, eventID); err != nil {
		abortWithMapped(c, err, "regenerate check-in token")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Event QR code
// @Description JSON payload plus base64 PNG, or the raw PNG with format=png
// @Tags partner
// @Security BearerAuth
// @Produce json,png
// @Param id path string true "Event ID"
// @Param size query int false "PNG edge in pixels (default 512)"
// @Param format query string false "png for the raw image"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /api/partner/events/{id}/qr [get]
func (h *PartnerHandler) GetEventQR(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	qr, err := h.directory.GetEventQR(c.Request.Context(), partnerID, eventID, intQuery(c, "size", 0))
	if err != nil {
		abortWithMapped(c, err, "get event qr")
		return
	}
	if c.Query("format") == "png" {
		c.Data(http.StatusOK, "image/png", qr.PNG)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"event_id":   qr.EventID,
		"partner_id": qr.PartnerID,
		"payload":    qr.Payload,
		"png_base64": base64.StdEncoding.EncodeToString(qr.PNG),
	})
}

// @Summary Event attendees
// @Tags partner
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.ListResponse[queries.AttendeeView]
// @Failure 404 {object} httperr.Response
// @Router /api/partner/events/{id}/attendees [get]
func (h *PartnerHandler) ListAttendees(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	attendees, err := h.checkIns.ListAttendees(c.Request.Context(), partnerID, eventID)
	if err != nil {
		abortWithMapped(c, err, "list attendees")
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse[*queries.AttendeeView]{Items: attendees})
}
