package providers

import (
	"context"
	"errors"
	"net/http"
	"socialnino/internal/structures"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userKey contextKey = "username"

const defaultTokenTTL = 24 * time.Hour

type SessionProviderInterface interface {
	IssueToken(username string) (string, error)
	Middleware(next http.Handler) http.Handler
}

type SessionProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionProvider(conf *structures.Config) SessionProviderInterface {
	ttl := conf.Session.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &SessionProvider{
		secret: []byte(conf.Session.Secret),
		ttl:    ttl,
	}
}

func (sp *SessionProvider) IssueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(sp.ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sp.secret)
}

func (sp *SessionProvider) resolve(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("token is not set")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sp.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return "", errors.New("username is not found in token")
	}
	return username, nil
}

// Middleware resolves the current user from a bearer token when one is
// present. Requests without a token pass through untouched; the identity
// then falls back to the ?user= query parameter at the controller level.
// A present-but-invalid token is rejected.
func (sp *SessionProvider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		username, err := sp.resolve(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the request identity: the authenticated session user
// when present, otherwise the ?user= query parameter.
func CurrentUser(r *http.Request) string {
	if username, ok := r.Context().Value(userKey).(string); ok {
		return username
	}
	return r.URL.Query().Get("user")
}
