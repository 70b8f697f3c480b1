package controllers

import (
	"net/http"

	"socialnino/internal/providers"
	"socialnino/internal/services"
)

type AuthController struct {
	logger  providers.Logger
	auth    services.AuthServiceInterface
	session providers.SessionProviderInterface
}

func NewAuthController(logger providers.Logger, auth services.AuthServiceInterface, session providers.SessionProviderInterface) *AuthController {
	return &AuthController{
		logger:  logger,
		auth:    auth,
		session: session,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Auth failures deliberately return one generic message: wrong password,
// unknown user and malformed input are indistinguishable to the client.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := ac.auth.Register(payload.Username, payload.Password); err != nil {
		http.Error(w, "Authentication failed", http.StatusUnauthorized)
		return
	}
	ac.issue(w, payload.Username, http.StatusCreated)
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := ac.auth.Verify(payload.Username, payload.Password); err != nil {
		http.Error(w, "Authentication failed", http.StatusUnauthorized)
		return
	}
	ac.issue(w, payload.Username, http.StatusOK)
}

func (ac *AuthController) issue(w http.ResponseWriter, username string, status int) {
	token, err := ac.session.IssueToken(username)
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "Failed to issue token: %s", err)
		http.Error(w, "Authentication failed", http.StatusUnauthorized)
		return
	}
	writeJSON(w, status, tokenResponse{Username: username, Token: token})
}
