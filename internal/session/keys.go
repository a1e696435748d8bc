package session

import "time"

// Redis key formats. One browser session is one hash plus a flash list.
const (
	// Session hash: session:{id} -> logged_in, profile, backend_cookie
	keySession = "session:%s"

	// Flash queue: flash:{id} -> list of JSON notifications
	keyFlash = "flash:%s"

	// Nav cart-count cache: cart_count:{id} -> int
	keyCartCount = "cart_count:%s"

	// Checkout idempotency: idem:order:{id}:{token} -> order id
	keyIdemOrder = "idem:order:%s:%s"
)

// Session hash fields.
const (
	fieldLoggedIn      = "logged_in"
	fieldProfile       = "profile"
	fieldBackendCookie = "backend_cookie"
)

var (
	TTLSession     = 30 * 24 * time.Hour
	TTLCartCount   = 30 * time.Second
	TTLIdempotency = 24 * time.Hour
)
