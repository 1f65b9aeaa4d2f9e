//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fervo/internal/domain/coupon"
	"fervo/internal/handler/api"
	resdto "fervo/internal/handler/dto/response"
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

type CouponHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	cmds      *commandsmock.MockCouponCommands
	wallet    *queriesmock.MockWalletQueries
	partnerID uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.partnerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.wallet = queriesmock.NewMockWalletQueries(s.mockCtrl)
	h := api.NewCouponHandler(s.cmds, s.wallet)

	partner := s.router.Group("/partner", func(c *gin.Context) {
		c.Set("user_id", s.partnerID)
		c.Next()
	})
	partner.POST("/coupons/redeem", h.Redeem)
	partner.GET("/coupons/:code", h.Lookup)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestRedeem() {
	url := "/partner/coupons/redeem"
	code := "FERVO-123456-ABCDE"

	s.Run("success: returns the redeemed coupon", func() {
		s.cmds.EXPECT().Redeem(gomock.Any(), s.partnerID, code).Return(&commands.RedeemResult{
			Code:       code,
			UserID:     uuid.New(),
			VenueName:  "Club Fervo",
			RedeemedAt: time.Now(),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": code}, "")

		var res resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(code, res.Code)
		s.Equal("redeemed", res.Status)
	})

	s.Run("error: outcomes map to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"not found", coupon.ErrCouponNotFound, http.StatusNotFound, "coupon not found"},
			{"already redeemed", coupon.ErrAlreadyRedeemed, http.StatusConflict, "coupon already redeemed"},
			{"other venue", coupon.ErrWrongVenue, http.StatusForbidden, "coupon not valid at this venue"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.cmds.EXPECT().Redeem(gomock.Any(), s.partnerID, code).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": code}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: code required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CouponHandlerTestSuite) TestLookup() {
	s.Run("success", func() {
		s.wallet.EXPECT().LookupCoupon(gomock.Any(), s.partnerID, "fervo-123456-abcde").
			Return(&queries.CouponLookupView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partner/coupons/fervo-123456-abcde", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: not found", func() {
		s.wallet.EXPECT().LookupCoupon(gomock.Any(), s.partnerID, gomock.Any()).Return(nil, queries.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partner/coupons/FERVO-000000-ZZZZZ", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
