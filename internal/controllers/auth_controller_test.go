package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnino/internal/providers"
	"socialnino/internal/services"
	"socialnino/internal/structures"
	"socialnino/internal/testutil"
)

func newAuthFixture(t *testing.T) *AuthController {
	t.Helper()
	store, reg := newTestStore(t)
	auth := services.NewAuthService(store, reg)
	session := providers.NewSessionProvider(&structures.Config{
		Session: structures.SessionConfig{Secret: "test-secret"},
	})
	return NewAuthController(&testutil.MockLogger{}, auth, session)
}

func TestRegister_IssuesToken(t *testing.T) {
	ac := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"nino","password":"secret"}`))
	rr := httptest.NewRecorder()
	ac.Register(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "nino", resp.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestRegister_DuplicateRejected(t *testing.T) {
	ac := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"nino","password":"secret"}`))
	ac.Register(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"nino","password":"other"}`))
	rr := httptest.NewRecorder()
	ac.Register(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Authentication failed")
}

func TestLogin_Success(t *testing.T) {
	ac := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"nino","password":"secret"}`))
	ac.Register(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"nino","password":"secret"}`))
	rr := httptest.NewRecorder()
	ac.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	ac := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"nino","password":"secret"}`))
	ac.Register(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"nino","password":"wrong"}`))
	rr := httptest.NewRecorder()
	ac.Login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Authentication failed")
}

func TestLogin_UnknownUserSameMessage(t *testing.T) {
	ac := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"ghost","password":"secret"}`))
	rr := httptest.NewRecorder()
	ac.Login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Authentication failed")
}

func TestRegister_InvalidJSON(t *testing.T) {
	ac := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	ac.Register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
