package service

import "errors"

var (
	// ErrSessionExpired wraps every adapter 401.
	ErrSessionExpired    = errors.New("session expired")
	ErrForbidden         = errors.New("not allowed")
	ErrNotFound          = errors.New("sweet not found")
	ErrRejected          = errors.New("request rejected by server")
	ErrServerUnavailable = errors.New("server unavailable")

	ErrInvalidLoginResponse = errors.New("invalid login response")
	ErrStaleResult          = errors.New("stale fetch result dropped")
	ErrOutOfStock           = errors.New("sweet is out of stock")
	ErrCatalogRefresh       = errors.New("catalog refresh after mutation failed")
)

// User-facing fallbacks used when the server gives no reason.
const (
	MsgLoginFailed          = "Login failed. Please try again."
	MsgInvalidLoginResponse = "Invalid login response"
	MsgRegistrationFailed   = "Registration failed. Please try again."
	MsgRegisteredNoLogin    = "Registration successful but login failed. Please try to login manually."
	MsgLoadSweetsFailed     = "Failed to load sweets"
	MsgPurchaseFailed       = "Unable to purchase - out of stock"
	MsgRestockFailed        = "Failed to restock sweet"
	MsgDeleteFailed         = "Failed to delete sweet"
)

// FailedToMessage is the fallback for an admin form operation such as "add"
// or "edit".
func FailedToMessage(op string) string {
	return "Failed to " + op + " sweet"
}
