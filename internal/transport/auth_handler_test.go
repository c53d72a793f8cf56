package transport

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/api/auth/login", "", LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "admin1", resp.User.ID)
	assert.Equal(t, "admin", resp.User.Username)
	assert.True(t, resp.User.IsAdmin)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name    string
		payload LoginRequest
		status  int
	}{
		{"wrong password", LoginRequest{Username: "admin", Password: "nope"}, http.StatusUnauthorized},
		{"wrong username", LoginRequest{Username: "root", Password: "admin123"}, http.StatusUnauthorized},
		{"missing password", LoginRequest{Username: "admin"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/api/auth/login", "", tt.payload)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestSessionEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "GET", "/api/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "session requires a token")

	token := adminToken(t, router)

	w = doRequest(router, "GET", "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var session SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "admin", session.Username)
}

func TestLogoutClearsSession(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t, router)

	w := doRequest(router, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The stateless token still passes the middleware but the stored
	// session is gone
	w = doRequest(router, "GET", "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
