//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fervo/internal/domain/user"
	"fervo/internal/handler/middleware"
	"fervo/internal/pkg/jwt"
	"fervo/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type tokenValidatorMock struct{ mock.Mock }

func (m *tokenValidatorMock) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Get(1).(user.Role), args.Error(2)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	validator *tokenValidatorMock
	router    *gin.Engine
	userID    uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.validator = &tokenValidatorMock{}
	s.userID = uuid.New()

	m := middleware.NewAuthMiddleware(s.validator)
	s.router = gin.New()
	echo := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.String(http.StatusOK, id.String())
	}
	s.router.GET("/me", m.RequireAuth(), echo)
	s.router.GET("/partner", m.RequireAuth(), m.RequirePartner(), echo)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) request(path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer header", func() {
		s.validator.On("ValidateToken", "good").Return(s.userID, user.RoleUser, nil).Once()
		w := s.request("/me", bearer("good"))
		s.Equal(http.StatusOK, w.Code)
		s.Equal(s.userID.String(), w.Body.String())
	})

	s.Run("cookie wins over header", func() {
		s.validator.On("ValidateToken", "from-cookie").Return(s.userID, user.RoleUser, nil).Once()
		w := s.request("/me", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "access_token", Value: "from-cookie"})
			r.Header.Set("Authorization", "Bearer from-header")
		})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing token", func() {
		w := s.request("/me", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Access token required")
	})

	s.Run("rejected token", func() {
		s.validator.On("ValidateToken", "expired").Return(uuid.Nil, user.Role(""), jwt.ErrInvalidToken).Once()
		w := s.request("/me", bearer("expired"))
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Invalid or expired token")
	})

	s.Run("expired token asks for a refresh", func() {
		s.validator.On("ValidateToken", "stale").Return(uuid.Nil, user.Role(""), usecase.ErrAccessTokenExpired).Once()
		w := s.request("/me", bearer("stale"))
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Access token expired")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequirePartner() {
	s.Run("partner passes", func() {
		s.validator.On("ValidateToken", "partner").Return(s.userID, user.RolePartner, nil).Once()
		w := s.request("/partner", bearer("partner"))
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("guest is forbidden", func() {
		s.validator.On("ValidateToken", "guest").Return(s.userID, user.RoleUser, nil).Once()
		w := s.request("/partner", bearer("guest"))
		s.Equal(http.StatusForbidden, w.Code)
		s.Contains(w.Body.String(), "Insufficient permissions")
	})
}
