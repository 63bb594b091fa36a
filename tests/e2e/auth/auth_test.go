//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"pawhaven/internal/domain/user"
	"pawhaven/internal/handler/dto/request"
	"pawhaven/internal/handler/dto/response"
	"pawhaven/tests/common/authtest"
	"pawhaven/tests/common/dbtest"
	"pawhaven/tests/common/httptest"
	"pawhaven/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	registerURL = "/api/auth/register"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "active@example.com", string(user.RoleIndividual))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleIndividual))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name     string
		email    string
		password string
		wantCode int
	}{
		{name: "valid credentials", email: "active@example.com", password: dbtest.TestPassword, wantCode: http.StatusOK},
		{name: "case-insensitive email", email: "ACTIVE@example.com", password: dbtest.TestPassword, wantCode: http.StatusOK},
		{name: "wrong password", email: "active@example.com", password: "wrong-password", wantCode: http.StatusUnauthorized},
		{name: "unknown account", email: "ghost@example.com", password: dbtest.TestPassword, wantCode: http.StatusUnauthorized},
		{name: "inactive account", email: "inactive@example.com", password: dbtest.TestPassword, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(s.T(), tt.wantCode, w.Code, w.Body.String())

			if tt.wantCode == http.StatusOK {
				var body response.LoginResponse
				require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &body))
				require.NotEmpty(s.T(), body.AccessToken)
				require.NotNil(s.T(), body.User)
				require.Equal(s.T(), "active@example.com", body.User.Email)

				require.NotNil(s.T(), httptest.ExtractCookie(w, "access_token"))
				require.NotNil(s.T(), httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestRegisterAndLogin() {
	s.Run("registration creates a usable account", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{
				Email:       "fresh@example.com",
				Password:    "password123",
				DisplayName: "Fresh",
				Role:        "shelter",
			}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := authtest.LoginUser(t, s.Router, "fresh@example.com", "password123")

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		var me map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &me))
		require.Equal(t, "fresh@example.com", me["email"])
		require.Equal(t, "shelter", me["role"])
	})

	s.Run("duplicate email is rejected", func() {
		t := s.T()

		body := request.RegisterRequest{
			Email:       "active@example.com",
			Password:    "password123",
			DisplayName: "Duplicate",
			Role:        "individual",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh cookie yields a new access token", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "active@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		cookies := httptest.ExtractCookies(lw)
		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var refreshed response.RefreshResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &refreshed))
		require.NotEmpty(t, refreshed.AccessToken)
	})

	s.Run("garbage refresh token is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "not-a-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears session cookies", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "active@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(lw))
	})
}
