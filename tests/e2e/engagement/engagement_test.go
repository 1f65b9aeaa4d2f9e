//go:build e2e

package engagement_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fervo/internal/handler/dto/request"
	resdto "fervo/internal/handler/dto/response"
	"fervo/internal/usecase/queries"
	"fervo/tests/common/authtest"
	"fervo/tests/common/httptest"
	"fervo/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type engagementSuite struct {
	e2e.SharedSuite
	partnerToken string
	guestToken   string
	event        queries.EventView
	payload      string
}

func TestEngagementSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(engagementSuite))
}

func (s *engagementSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	t := s.T()

	s.partnerToken = authtest.CreatePartnerAndLogin(t, s.DB, s.Router, "club@example.com", "Club Fervo")
	s.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "user")

	start := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/partner/events", request.EventRequest{
		Name:       "Friday Techno",
		MusicGenre: "techno",
		StartTime:  start,
		EndTime:    start.Add(6 * time.Hour),
		IsFree:     true,
	}, s.partnerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &s.event)

	var qr struct {
		Payload string `json:"payload"`
	}
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/partner/events/%s/qr", s.event.ID), nil, s.partnerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &qr)
	require.NotEmpty(t, qr.Payload)
	s.payload = qr.Payload
}

func (s *engagementSuite) checkIn(token, payload string) int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/check-ins", request.CheckInRequest{Payload: payload}, token)
	return w.Code
}

func (s *engagementSuite) TestCheckInOncePerEvent() {
	t := s.T()

	require.Equal(t, http.StatusCreated, s.checkIn(s.guestToken, s.payload))
	require.Equal(t, http.StatusConflict, s.checkIn(s.guestToken, s.payload))

	var attendees, history int
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM event_attendees WHERE event_id = $1", s.event.ID).Scan(&attendees))
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM user_check_ins WHERE event_id = $1", s.event.ID).Scan(&history))
	require.Equal(t, 1, attendees)
	require.Equal(t, 1, history)
}

func (s *engagementSuite) TestRegeneratedTokenInvalidatesOldQR() {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost,
		fmt.Sprintf("/api/partner/events/%s/check-in-token", s.event.ID), nil, s.partnerToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	require.Equal(t, http.StatusForbidden, s.checkIn(s.guestToken, s.payload))
}

func (s *engagementSuite) TestRatingRequiresCheckIn() {
	t := s.T()
	url := fmt.Sprintf("/api/events/%s/rating", s.event.ID)

	w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, request.SubmitRatingRequest{Rating: 4}, s.guestToken)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	require.Equal(t, http.StatusCreated, s.checkIn(s.guestToken, s.payload))

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, request.SubmitRatingRequest{Rating: 4, Comment: "great sound"}, s.guestToken)
	var first resdto.RatingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
	require.Equal(t, 1, first.RatingCount)
	require.InDelta(t, 4.0, first.AverageRating, 1e-9)

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, request.SubmitRatingRequest{Rating: 2}, s.guestToken)
	var again resdto.RatingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &again)
	require.True(t, again.Replaced)
	require.Equal(t, 1, again.RatingCount)
	require.InDelta(t, 2.0, again.AverageRating, 1e-9)

	var venueAvg float64
	var venueCount int
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT average_venue_rating, venue_rating_count FROM partners WHERE id = $1", s.event.PartnerID).Scan(&venueAvg, &venueCount))
	require.Equal(t, 1, venueCount)
	require.InDelta(t, 2.0, venueAvg, 1e-9)
}

func (s *engagementSuite) TestSharesMintAndRedeemCoupon() {
	t := s.T()
	url := fmt.Sprintf("/api/events/%s/shares", s.event.ID)

	var last resdto.ShareResponse
	var codes []string
	for range 10 {
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.guestToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &last)
		codes = append(codes, last.CouponCodes...)
	}
	require.Len(t, codes, 1)
	require.Equal(t, 0, last.Balance)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/partner/coupons/redeem", map[string]string{"code": codes[0]}, s.partnerToken)
	var redeemed resdto.RedeemResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &redeemed)
	require.Equal(t, "redeemed", redeemed.Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/partner/coupons/redeem", map[string]string{"code": codes[0]}, s.partnerToken)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "coupon already redeemed")

	var jobs int
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT count(*) FROM notification_jobs WHERE topic = 'coupon.minted'").Scan(&jobs))
	require.Equal(t, 1, jobs)
}
