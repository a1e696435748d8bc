package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// RequestTimeout is the fixed per-request timeout. There is no retry,
// backoff, or request deduplication anywhere in the client.
const RequestTimeout = 15 * time.Second

// CredentialSource supplies the backend session cookie for a request and
// receives the auth-expired signal. The web layer backs it with the
// per-browser session store.
type CredentialSource interface {
	// BackendCookie returns the stored Cookie header value, or "" for an
	// anonymous request.
	BackendCookie(ctx context.Context) string

	// AuthExpired is invoked when the backend answers 401 or 403, before
	// the error is returned to the caller. Implementations clear the
	// session's logged-in flag.
	AuthExpired(ctx context.Context)
}

// Client is the single point of configuration for all backend calls.
// Call groups are exposed as fields: Auth, Products, Cart, Orders, Reviews.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource

	Auth     AuthAPI
	Products ProductsAPI
	Cart     CartAPI
	Orders   OrdersAPI
	Reviews  ReviewsAPI
}

// NewClient builds a client for the given base URL, e.g.
// "http://localhost:8000/api".
func NewClient(baseURL string, creds CredentialSource) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: RequestTimeout},
		creds:   creds,
	}
	c.Auth = AuthAPI{c}
	c.Products = ProductsAPI{c}
	c.Cart = CartAPI{c}
	c.Orders = OrdersAPI{c}
	c.Reviews = ReviewsAPI{c}
	return c
}

// do issues one request and decodes the response body into out (unless out
// is nil). The response is returned so callers can read Set-Cookie headers.
func (c *Client) do(ctx context.Context, method, path string, body, out any, header http.Header) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.creds != nil {
		if cookie := c.creds.BackendCookie(ctx); cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
	}

	log.Printf("[Backend] %s %s", method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			// Navigation away cancels the request; don't report the
			// backend as down.
			return nil, ctxErr
		}
		log.Printf("[Backend] %s %s: %v", method, path, err)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if c.creds != nil {
			c.creds.AuthExpired(ctx)
		}
		return resp, ErrAuthExpired
	}
	if resp.StatusCode == http.StatusNotFound {
		return resp, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return resp, &StatusError{StatusCode: resp.StatusCode, Body: b}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, nil, out, nil)
	return err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, body, out, nil)
	return err
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, body, out, nil)
	return err
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}

// IsCanceled reports whether err is a context cancellation rather than a
// backend failure.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
