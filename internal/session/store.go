// Package session keeps per-browser storefront state in Redis: the
// logged-in flag, the cached profile blob, the backend's session cookie,
// the flash queue, and checkout idempotency tokens. It is the server-side
// counterpart of the browser's persistent key-value store and is the only
// storage layer in the system.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Profile is the locally cached user profile. It is persisted only here,
// never sent to the backend; see DESIGN.md for the open question.
type Profile struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// Store reads and writes session state. All components share it; writes
// are last-write-wins, matching the browser-storage semantics it replaces.
type Store struct {
	rdb *redis.Client
}

// NewStore wraps a Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// NewRedis dials Redis the way the storefront expects it configured.
func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// IsLoggedIn reads the session's login flag. Missing sessions read as
// logged out.
func (s *Store) IsLoggedIn(ctx context.Context, sessionID string) bool {
	v, err := s.rdb.HGet(ctx, fmt.Sprintf(keySession, sessionID), fieldLoggedIn).Result()
	return err == nil && v == "true"
}

// SetLoggedIn writes the login flag.
func (s *Store) SetLoggedIn(ctx context.Context, sessionID string, loggedIn bool) error {
	key := fmt.Sprintf(keySession, sessionID)
	v := "false"
	if loggedIn {
		v = "true"
	}
	if err := s.rdb.HSet(ctx, key, fieldLoggedIn, v).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, TTLSession).Err()
}

// Profile reads the cached profile. ok is false when none is stored.
func (s *Store) Profile(ctx context.Context, sessionID string) (Profile, bool) {
	raw, err := s.rdb.HGet(ctx, fmt.Sprintf(keySession, sessionID), fieldProfile).Result()
	if err != nil || raw == "" {
		return Profile{}, false
	}
	var p Profile
	if json.Unmarshal([]byte(raw), &p) != nil {
		return Profile{}, false
	}
	return p, true
}

// SaveProfile stores the profile blob.
func (s *Store) SaveProfile(ctx context.Context, sessionID string, p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(keySession, sessionID)
	if err := s.rdb.HSet(ctx, key, fieldProfile, raw).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, TTLSession).Err()
}

// BackendCookie reads the stored backend session cookie for outgoing calls.
func (s *Store) BackendCookie(ctx context.Context, sessionID string) string {
	v, err := s.rdb.HGet(ctx, fmt.Sprintf(keySession, sessionID), fieldBackendCookie).Result()
	if err != nil {
		return ""
	}
	return v
}

// SetBackendCookie stores the backend session cookie captured at login.
func (s *Store) SetBackendCookie(ctx context.Context, sessionID, cookie string) error {
	key := fmt.Sprintf(keySession, sessionID)
	if err := s.rdb.HSet(ctx, key, fieldBackendCookie, cookie).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, TTLSession).Err()
}

// ClearAuth drops the login flag, profile, and backend cookie. Used at
// logout and when the backend reports the session expired.
func (s *Store) ClearAuth(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(keySession, sessionID)
	return s.rdb.HDel(ctx, key, fieldLoggedIn, fieldProfile, fieldBackendCookie).Err()
}

// ============================================
// Nav cart-count cache
// ============================================

// CachedCartCount reads the short-TTL nav counter cache.
func (s *Store) CachedCartCount(ctx context.Context, sessionID string) (int, bool) {
	n, err := s.rdb.Get(ctx, fmt.Sprintf(keyCartCount, sessionID)).Int()
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetCachedCartCount caches the nav counter for TTLCartCount.
func (s *Store) SetCachedCartCount(ctx context.Context, sessionID string, count int) error {
	return s.rdb.Set(ctx, fmt.Sprintf(keyCartCount, sessionID), count, TTLCartCount).Err()
}

// InvalidateCartCount drops the cached counter so the next nav poll
// refetches the cart. Called from the change broadcast.
func (s *Store) InvalidateCartCount(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, fmt.Sprintf(keyCartCount, sessionID)).Err()
}

// ============================================
// Flash queue
// ============================================

// PushFlash appends a serialized notification to the session's queue.
func (s *Store) PushFlash(ctx context.Context, sessionID string, data []byte) error {
	key := fmt.Sprintf(keyFlash, sessionID)
	if err := s.rdb.RPush(ctx, key, data).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, time.Hour).Err()
}

// PopFlashes drains the session's queue.
func (s *Store) PopFlashes(ctx context.Context, sessionID string) [][]byte {
	key := fmt.Sprintf(keyFlash, sessionID)
	vals, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil || len(vals) == 0 {
		return nil
	}
	s.rdb.Del(ctx, key)
	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		out = append(out, []byte(v))
	}
	return out
}

// ============================================
// Checkout idempotency
// ============================================

// ClaimOrderToken claims a checkout form's idempotency token. The first
// caller wins; a later caller gets claimed=false plus whatever order ID
// the token was bound to (empty while the first submit is in flight).
func (s *Store) ClaimOrderToken(ctx context.Context, sessionID, token string) (claimed bool, existingOrderID string, err error) {
	key := fmt.Sprintf(keyIdemOrder, sessionID, token)
	ok, err := s.rdb.SetNX(ctx, key, "", TTLIdempotency).Result()
	if err != nil {
		return false, "", err
	}
	if ok {
		return true, "", nil
	}
	existing, err := s.rdb.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return false, "", err
	}
	return false, existing, nil
}

// BindOrderToken records the order a claimed token produced.
func (s *Store) BindOrderToken(ctx context.Context, sessionID, token, orderID string) error {
	key := fmt.Sprintf(keyIdemOrder, sessionID, token)
	return s.rdb.Set(ctx, key, orderID, TTLIdempotency).Err()
}

// ReleaseOrderToken frees a claimed token after a failed submit so the
// user can retry with the same form.
func (s *Store) ReleaseOrderToken(ctx context.Context, sessionID, token string) error {
	return s.rdb.Del(ctx, fmt.Sprintf(keyIdemOrder, sessionID, token)).Err()
}
