//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"fervo/internal/domain/user"
	"fervo/internal/handler/dto/request"
	resdto "fervo/internal/handler/dto/response"
	"fervo/internal/usecase/queries"
	"fervo/tests/common/authtest"
	"fervo/tests/common/dbtest"
	"fervo/tests/common/httptest"
	"fervo/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleUser))
	dbtest.CreateTestPartner(s.T(), s.DB, "club@example.com", "Club Fervo")
}

func (s *authSuite) TestRegister() {
	s.Run("guest", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email: "New@Example.com", Password: "password123", Role: "user", DisplayName: "Newbie",
		}, "")

		var res resdto.AuthResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.NotEmpty(t, res.AccessToken)
		require.Equal(t, "new@example.com", res.User.Email)
	})

	s.Run("partner creates the venue row", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email: "bar@example.com", Password: "password123", Role: "partner", DisplayName: "Bar Owner",
			Venue: &request.VenueRequest{Name: "Rooftop Bar", Latitude: 48.13, Longitude: 11.58, Category: "rooftop"},
		}, "")

		var res resdto.AuthResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)

		var name string
		err := s.DB.QueryRow(t.Context(), "SELECT name FROM partners WHERE id = $1", res.User.ID).Scan(&name)
		require.NoError(t, err)
		require.Equal(t, "Rooftop Bar", name)
	})

	s.Run("duplicate email differing in case", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email: "GUEST@example.com", Password: "password123", Role: "user", DisplayName: "Dup",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "email already registered")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "guest@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "guest@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "guest@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.AuthResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotEmpty(t, res.RefreshToken)

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name           string
		refreshToken   func() string
		expectedStatus int
	}{
		{
			name: "valid refresh token",
			refreshToken: func() string {
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "guest@example.com", Password: dbtest.DefaultPassword}, "")
				var res resdto.AuthResponse
				_ = httptest.DecodeResponseBody(s.T(), w.Body, &res)
				return res.RefreshToken
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "access token is not accepted for refresh",
			refreshToken: func() string {
				id := dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleUser))
				return s.jwt.AccessToken(s.T(), id, user.RoleUser)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "refresh token for a deleted user",
			refreshToken: func() string {
				return s.jwt.RefreshToken(s.T(), uuid.New(), user.RoleUser)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{name: "garbage token", refreshToken: func() string { return "invalid-refresh-token" }, expectedStatus: http.StatusUnauthorized},
		{name: "missing token", refreshToken: func() string { return "" }, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
				request.RefreshRequest{RefreshToken: tt.refreshToken()}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("clears cookies", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "guest@example.com", dbtest.DefaultPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("without token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("partner profile", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "club@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.NotContains(t, w.Body.String(), "password")

		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "club@example.com", me.Email)
		require.Equal(t, user.RolePartner.String(), me.Role)
		require.NotNil(t, me.Venue)
		require.Equal(t, "Club Fervo", me.Venue.Name)
	})

	s.Run("guest profile has no venue", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "guest@example.com", dbtest.DefaultPassword)

		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token), http.StatusOK, &me)
		require.Nil(t, me.Venue)
	})

	s.Run("expired token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleUser))
		token := s.jwt.ExpiredAccessToken(t, userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token expired")
	})

	s.Run("invalid token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
