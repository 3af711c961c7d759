package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.PerformRequestWithToken(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Nimal Perera",
		"email":    "Nimal@Example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered types.AuthResponse
	decodeBody(t, w, &registered)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "nimal@example.com", registered.User.Email)
	assert.Equal(t, "user", registered.User.Role)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = env.PerformRequestWithToken(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Someone Else",
		"email":    "nimal@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.PerformRequestWithToken(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nimal@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.PerformRequestWithToken(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nimal@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var loggedIn types.AuthResponse
	decodeBody(t, w, &loggedIn)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegisterValidatesBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.PerformRequestWithToken(http.MethodPost, "/api/auth/register", map[string]string{
		"name":  "No Password",
		"email": "not-an-email",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.PerformRequestWithToken(http.MethodGet, "/api/auth/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Not authorized, no token"}`, w.Body.String())

	w = env.PerformRequestWithToken(http.MethodGet, "/api/auth/profile", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Not authorized, token failed"}`, w.Body.String())
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(t, "kamala@example.com", "user")

	w := env.PerformRequestWithToken(http.MethodPut, "/api/auth/profile", map[string]string{
		"name":  "Kamala Silva",
		"phone": "0771234567",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.PerformRequestWithToken(http.MethodGet, "/api/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]interface{}
	decodeBody(t, w, &profile)
	assert.Equal(t, user.ID.String(), profile["id"])
	assert.Equal(t, "Kamala Silva", profile["name"])
	assert.Equal(t, "0771234567", profile["phone"])
}

func TestUpdateProfileWithAvatar(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "avatar@example.com", "user")

	env.storage.On("Upload", anyContext, "avatars", "me.jpg", "image/jpeg", []byte("jpeg-bytes")).
		Return(uploadResult("https://cdn.example.com/avatars/me.jpg"), nil).Once()

	w := env.PerformMultipart(http.MethodPut, "/api/auth/profile",
		map[string]string{"address": "Kandy"},
		&testFile{field: "avatar", name: "me.jpg", contentType: "image/jpeg", data: []byte("jpeg-bytes")},
		token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile map[string]interface{}
	decodeBody(t, w, &profile)
	assert.Equal(t, "https://cdn.example.com/avatars/me.jpg", profile["avatar"])
	assert.Equal(t, "Kandy", profile["address"])
	assert.Equal(t, "Test User", profile["name"])
	env.storage.AssertExpectations(t)
}
