//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fervo/internal/domain/checkin"
	"fervo/internal/domain/event"
	"fervo/internal/domain/rating"
	"fervo/internal/domain/reward"
	"fervo/internal/handler/api"
	resdto "fervo/internal/handler/dto/response"
	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/queries"
	"fervo/tests/common/httptest"
	commandsmock "fervo/tests/mock/commands"
	queriesmock "fervo/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngagementHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	checkIns *commandsmock.MockCheckInCommands
	ratings  *commandsmock.MockRatingCommands
	shares   *commandsmock.MockShareCommands
	ratingQ  *queriesmock.MockRatingQueries
	userID   uuid.UUID
}

func (s *EngagementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.checkIns = commandsmock.NewMockCheckInCommands(s.mockCtrl)
	s.ratings = commandsmock.NewMockRatingCommands(s.mockCtrl)
	s.shares = commandsmock.NewMockShareCommands(s.mockCtrl)
	s.ratingQ = queriesmock.NewMockRatingQueries(s.mockCtrl)
	h := api.NewEngagementHandler(s.checkIns, s.ratings, s.shares, s.ratingQ)

	authed := s.router.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	})
	authed.POST("/check-ins", h.CheckIn)
	authed.PUT("/events/:id/rating", h.SubmitRating)
	authed.DELETE("/events/:id/rating", h.DeleteMyRating)
	authed.POST("/events/:id/shares", h.Share)
	s.router.GET("/events/:id/ratings", h.ListRatings)
}

func (s *EngagementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngagementHandlerSuite(t *testing.T) {
	suite.Run(t, new(EngagementHandlerTestSuite))
}

func (s *EngagementHandlerTestSuite) TestCheckIn() {
	payload := `{"eventId":"` + uuid.NewString() + `","partnerId":"` + uuid.NewString() + `","token":"abc"}`
	body := map[string]any{"payload": payload}

	s.Run("success: 201 with the denormalized names", func() {
		s.checkIns.EXPECT().CheckIn(gomock.Any(), s.userID, payload).Return(&commands.CheckInResult{
			EventID:     uuid.New(),
			PartnerID:   uuid.New(),
			EventName:   "Friday Techno",
			VenueName:   "Club Fervo",
			CheckedInAt: time.Now(),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-ins", body, "token")

		var res resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("Friday Techno", res.EventName)
		s.Equal("Club Fervo", res.VenueName)
	})

	s.Run("error: missing payload", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-ins", map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-ins", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: usecase errors map to user-facing messages", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"malformed payload", errs.Mark(errs.New("decode payload"), checkin.ErrMalformedPayload), http.StatusBadRequest, "malformed check-in payload"},
			{"event not found", event.ErrEventNotFound, http.StatusNotFound, "event not found"},
			{"wrong token", checkin.ErrInvalidToken, http.StatusForbidden, "invalid check-in token"},
			{"second attempt", checkin.ErrAlreadyCheckedIn, http.StatusConflict, "already checked in"},
			{"unexpected", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.checkIns.EXPECT().CheckIn(gomock.Any(), s.userID, payload).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/check-ins", body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *EngagementHandlerTestSuite) TestSubmitRating() {
	eventID := uuid.New()
	url := "/events/" + eventID.String() + "/rating"

	s.Run("success: passes path event id through", func() {
		s.ratings.EXPECT().Submit(gomock.Any(), s.userID, commands.SubmitRatingRequest{EventID: eventID, Score: 5, Comment: "great"}).
			Return(&commands.RatingResult{RatingID: rating.ID(eventID, s.userID), AverageRating: 4.5, RatingCount: 2}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 5, "comment": "great"}, "token")

		var res resdto.RatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.InDelta(4.5, res.AverageRating, 1e-9)
		s.Equal(2, res.RatingCount)
	})

	s.Run("error: score out of range rejected by binding", func() {
		for _, v := range []int{0, 6} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": v}, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: not checked in", func() {
		s.ratings.EXPECT().Submit(gomock.Any(), s.userID, gomock.Any()).Return(nil, rating.ErrNotEligible)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 3}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only checked-in guests")
	})

	s.Run("error: invalid event id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/events/nope/rating", map[string]any{"rating": 3}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *EngagementHandlerTestSuite) TestDeleteMyRating() {
	eventID := uuid.New()
	url := "/events/" + eventID.String() + "/rating"

	s.Run("success: 204", func() {
		s.ratings.EXPECT().DeleteOwn(gomock.Any(), s.userID, eventID).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: nothing to delete", func() {
		s.ratings.EXPECT().DeleteOwn(gomock.Any(), s.userID, eventID).Return(rating.ErrRatingNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "rating not found")
	})
}

func (s *EngagementHandlerTestSuite) TestListRatings() {
	eventID := uuid.New()

	s.Run("success: forwards cursor and exposes the next one", func() {
		s.ratingQ.EXPECT().ListByEvent(gomock.Any(), eventID, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.RatingListItem{{}}, &queries.Cursor{After: "def"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+eventID.String()+"/ratings?after=abc&limit=5", nil, "")

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("def", res["next_cursor"])
		s.Len(res["items"], 1)
	})

	s.Run("error: bad cursor", func() {
		s.ratingQ.EXPECT().ListByEvent(gomock.Any(), eventID, gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+eventID.String()+"/ratings?after=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *EngagementHandlerTestSuite) TestShare() {
	eventID, partnerID := uuid.New(), uuid.New()
	url := "/events/" + eventID.String() + "/shares"

	s.Run("success: rewarded share with a minted coupon", func() {
		s.shares.EXPECT().RecordShare(gomock.Any(), s.userID, eventID).Return(&commands.ShareResult{
			EventID:      eventID,
			PartnerID:    partnerID,
			CoinsAwarded: 10,
			Balance:      0,
			CouponCodes:  []string{"FERVO-123456-ABCDE"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var res resdto.ShareResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Rewarded)
		s.Equal([]string{"FERVO-123456-ABCDE"}, res.CouponCodes)
	})

	s.Run("success: skipped share reports why", func() {
		s.shares.EXPECT().RecordShare(gomock.Any(), s.userID, eventID).Return(&commands.ShareResult{
			EventID:    eventID,
			PartnerID:  partnerID,
			Balance:    40,
			SkipReason: reward.SkipEventEnded,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var res resdto.ShareResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Rewarded)
		s.Equal("event_ended", res.SkipReason)
		s.Equal(0, res.CoinsAwarded)
		s.Equal(40, res.Balance)
	})

	s.Run("error: unknown event", func() {
		s.shares.EXPECT().RecordShare(gomock.Any(), s.userID, eventID).Return(nil, event.ErrEventNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "event not found")
	})
}
