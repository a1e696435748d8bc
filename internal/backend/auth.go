package backend

import (
	"context"
	"net/http"
	"strings"
)

// AuthAPI groups the /users/ auth endpoints.
type AuthAPI struct {
	c *Client
}

// RegisterRequest mirrors the backend registration form.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginRequest carries the login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account.
func (a AuthAPI) Register(ctx context.Context, req RegisterRequest) error {
	return a.c.post(ctx, "/users/register/", req, nil)
}

// Login authenticates and returns the session cookie header value the
// backend established, to be stored in the browser session and replayed
// on subsequent calls.
func (a AuthAPI) Login(ctx context.Context, req LoginRequest) (string, error) {
	resp, err := a.c.do(ctx, http.MethodPost, "/users/login/", req, nil, nil)
	if err != nil {
		return "", err
	}
	return cookieHeader(resp.Cookies()), nil
}

// Logout ends the backend session.
func (a AuthAPI) Logout(ctx context.Context) error {
	return a.c.post(ctx, "/users/logout/", nil, nil)
}

// cookieHeader flattens Set-Cookie values into a single Cookie header.
func cookieHeader(cookies []*http.Cookie) string {
	pairs := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		pairs = append(pairs, ck.Name+"="+ck.Value)
	}
	return strings.Join(pairs, "; ")
}
