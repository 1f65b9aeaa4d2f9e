package api

import (
	"log/slog"
	"net/http"

	"fervo/internal/domain/checkin"
	"fervo/internal/domain/coupon"
	"fervo/internal/domain/event"
	"fervo/internal/domain/rating"
	"fervo/internal/domain/subscription"
	"fervo/internal/domain/user"
	"fervo/internal/domain/venue"
	"fervo/internal/handler/httperr"
	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/queries"
	"fervo/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	sentinel error
	status   int
}

// First match wins; the sentinel's text becomes the user-facing message.
var errorMappings = []errorMapping{
	// 400
	{user.ErrInvalidEmail, http.StatusBadRequest},
	{user.ErrInvalidRole, http.StatusBadRequest},
	{user.ErrPasswordTooWeak, http.StatusBadRequest},
	{user.ErrInvalidDisplayName, http.StatusBadRequest},
	{venue.ErrInvalidName, http.StatusBadRequest},
	{venue.ErrInvalidLatitude, http.StatusBadRequest},
	{venue.ErrInvalidLongitude, http.StatusBadRequest},
	{venue.ErrInvalidCategory, http.StatusBadRequest},
	{event.ErrInvalidName, http.StatusBadRequest},
	{event.ErrInvalidWindow, http.StatusBadRequest},
	{event.ErrNegativePrice, http.StatusBadRequest},
	{event.ErrFreeEventPriced, http.StatusBadRequest},
	{event.ErrInvalidCurrency, http.StatusBadRequest},
	{rating.ErrInvalidScore, http.StatusBadRequest},
	{rating.ErrCommentTooLong, http.StatusBadRequest},
	{checkin.ErrMalformedPayload, http.StatusBadRequest},
	{coupon.ErrInvalidCouponCode, http.StatusBadRequest},
	{coupon.ErrInvalidStatus, http.StatusBadRequest},
	{subscription.ErrInvalidPlan, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
	{queries.ErrInvalidBoundingBox, http.StatusBadRequest},
	{commands.ErrUnsupportedImage, http.StatusBadRequest},
	{commands.ErrVenueProfileRequired, http.StatusBadRequest},
	{commands.ErrInvalidPushToken, http.StatusBadRequest},
	{shared.ErrInvalidWebhookSignature, http.StatusBadRequest},
	{errs.ErrDomainValidation, http.StatusBadRequest},
	// 401
	{commands.ErrInvalidCredentials, http.StatusUnauthorized},
	{commands.ErrTokenValidation, http.StatusUnauthorized},
	// 403
	{checkin.ErrInvalidToken, http.StatusForbidden},
	{rating.ErrNotEligible, http.StatusForbidden},
	{coupon.ErrWrongVenue, http.StatusForbidden},
	{errs.ErrForbidden, http.StatusForbidden},
	// 404
	{event.ErrEventNotFound, http.StatusNotFound},
	{venue.ErrVenueNotFound, http.StatusNotFound},
	{coupon.ErrCouponNotFound, http.StatusNotFound},
	{rating.ErrRatingNotFound, http.StatusNotFound},
	{commands.ErrUserNotFound, http.StatusNotFound},
	{queries.ErrEventNotFound, http.StatusNotFound},
	{queries.ErrVenueNotFound, http.StatusNotFound},
	{queries.ErrCouponNotFound, http.StatusNotFound},
	{queries.ErrRatingNotFound, http.StatusNotFound},
	{queries.ErrUserNotFound, http.StatusNotFound},
	// 409
	{checkin.ErrAlreadyCheckedIn, http.StatusConflict},
	{coupon.ErrAlreadyRedeemed, http.StatusConflict},
	{commands.ErrEmailTaken, http.StatusConflict},
	// 422
	{queries.ErrNoFeedback, http.StatusUnprocessableEntity},
	// integrations
	{subscription.ErrPlanNotConfigured, http.StatusServiceUnavailable},
	{errs.ErrIntegrationDisabled, http.StatusServiceUnavailable},
	{errs.ErrIntegrationFailed, http.StatusBadGateway},
}

func statusFor(err error) (int, string, bool) {
	for _, m := range errorMappings {
		if errs.Is(err, m.sentinel) {
			return m.status, m.sentinel.Error(), true
		}
	}
	return http.StatusInternalServerError, "Internal server error", false
}

// abortWithMapped picks status and message from the error chain.
func abortWithMapped(c *gin.Context, err error, op string) {
	status, msg, known := statusFor(err)
	if !known || status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), op+" failed", "error", err, "status", status)
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

func abortBadRequest(c *gin.Context, err error) {
	var detail any
	if fields := httperr.ValidationDetail(err); len(fields) > 0 {
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
}
