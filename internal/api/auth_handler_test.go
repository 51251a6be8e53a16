package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":  "ayse",
		"email":     "ayse@example.com",
		"full_name": "Ayşe Yılmaz",
		"password":  "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Status)
	require.Equal(t, "User registered successfully", env.Message)

	var user struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		IsActive bool   `json:"is_active"`
		IsAdmin  bool   `json:"is_admin"`
	}
	decodeData(t, env, &user)
	require.NotZero(t, user.ID)
	require.Equal(t, "ayse", user.Username)
	require.True(t, user.IsActive)
	require.False(t, user.IsAdmin)

	// The password hash never leaves the API.
	require.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":  "ab",
		"email":     "not-an-email",
		"full_name": "",
		"password":  "123",
	}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.False(t, env.Status)
	require.Equal(t, "ValidationFailed", env.Error)
}

func TestRegisterDuplicates(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":  "ayse",
		"email":     "other@example.com",
		"full_name": "Someone Else",
		"password":  "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Conflict", env.Error)

	rec, env = app.do(t, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":  "fatma",
		"email":     "ayse@example.com",
		"full_name": "Fatma Demir",
		"password":  "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Conflict", env.Error)
}

func TestLoginFailures(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "ayse",
		"password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Unauthorized", env.Error)
	require.Equal(t, "Invalid username or password", env.Message)

	rec, env = app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "ghost",
		"password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid username or password", env.Message)
}

func TestLoginWithEmail(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "ayse@example.com",
		"password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens struct {
		TokenType string `json:"token_type"`
		ExpiresIn int64  `json:"expires_in"`
	}
	decodeData(t, env, &tokens)
	require.Equal(t, "bearer", tokens.TokenType)
	require.Equal(t, int64(3600), tokens.ExpiresIn)
}

func TestRefreshEndpoint(t *testing.T) {
	app := newTestApp(t)
	_, refreshToken := registerAndLogin(t, app)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/refresh", nil, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "ValidationFailed", env.Error)

	rec, env = app.do(t, http.MethodPost, "/api/v1/auth/refresh?refresh_token="+refreshToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Token refreshed successfully", env.Message)

	var rotated struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeData(t, env, &rotated)
	require.NotEmpty(t, rotated.AccessToken)
	require.NotEqual(t, refreshToken, rotated.RefreshToken)

	// The consumed refresh token is rejected on reuse.
	rec, env = app.do(t, http.MethodPost, "/api/v1/auth/refresh?refresh_token="+refreshToken, nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Refresh token has already been used or revoked", env.Message)
}

func TestMeEndpoint(t *testing.T) {
	app := newTestApp(t)
	accessToken, refreshToken := registerAndLogin(t, app)

	rec, env := app.do(t, http.MethodGet, "/api/v1/auth/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Not authenticated", env.Message)

	rec, env = app.do(t, http.MethodGet, "/api/v1/auth/me", nil, map[string]string{
		"Authorization": "Basic abc",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid authorization header", env.Message)

	rec, env = app.do(t, http.MethodGet, "/api/v1/auth/me", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// A refresh token is not an access token.
	rec, env = app.do(t, http.MethodGet, "/api/v1/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + refreshToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = app.do(t, http.MethodGet, "/api/v1/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var user struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	decodeData(t, env, &user)
	require.Equal(t, "ayse", user.Username)
	require.Equal(t, "ayse@example.com", user.Email)
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	app := newTestApp(t)

	rec, env := app.do(t, http.MethodPost, "/api/v1/auth/register", "not-json-object", nil)
	_ = env
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
