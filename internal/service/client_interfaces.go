// Package service holds the client's application state and business rules:
// the authenticated session, the route guard, the catalog with its filter
// reconciliation, inventory and purchase operations and the background
// catalog refresh.
//
// Views talk only to the interfaces declared here; everything that reaches
// the network goes through [adapter.ShopAdapter] and everything durable goes
// through [store.SessionSlotRepository].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sweet-shop/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionService owns the single authenticated session of the process.
type SessionService interface {
	// Restore loads the persisted credential and identity. Absent or
	// malformed slots are cleared and the session becomes unauthenticated.
	// The server is not contacted. Restore never leaves the status at
	// StatusRestoring.
	Restore(ctx context.Context) models.Session

	// Login exchanges credentials for a session. On failure the current
	// state is left untouched and Error carries the reason to show.
	Login(ctx context.Context, username, password string) models.LoginResult

	// Logout drops the session from memory and from the persisted slots.
	// Calling it while unauthenticated is a no-op.
	Logout(ctx context.Context)

	IsAuthenticated() bool

	// Snapshot returns a copy of the current session.
	Snapshot() models.Session

	// Expired delivers one value every time a 401 ends an authenticated
	// session. Values are dropped when nobody is listening.
	Expired() <-chan struct{}

	// OnExpired registers a callback run after a 401 has ended the session.
	OnExpired(fn func())
}

// CatalogService keeps the sweets list and the filter that selects what is
// visible.
type CatalogService interface {
	Criteria() models.FilterCriteria
	Mode() models.FilterMode

	// SetNameQuery, SetCategory and SetPriceRange update the criteria and
	// report whether a fetch is now required. SetPriceRange also switches
	// the mode to remote for the rest of the catalog's life.
	SetNameQuery(query string) bool
	SetCategory(category string) bool
	SetPriceRange(minPrice, maxPrice float64) bool

	// Refresh fetches the list for the current mode and criteria. A result
	// that resolves after a newer fetch was issued is dropped and
	// ErrStaleResult returned. On error the list and mode are unchanged.
	Refresh(ctx context.Context) error

	// Visible returns the list to render for a shopper.
	Visible() []models.Sweet
	// AdminVisible filters the last fetch by name and category only.
	AdminVisible(nameQuery, category string) []models.Sweet
	// All returns the last accepted fetch unfiltered.
	All() []models.Sweet
	// Lookup finds a cached sweet by id.
	Lookup(id int64) (models.Sweet, bool)
	// Replace swaps the cached sweet with the same id.
	Replace(sweet models.Sweet)

	Stats() models.ShopStats
	AdminStats() models.InventoryStats

	// Reset restores default criteria and local mode and forgets the list.
	Reset()
}

// InventoryService performs catalog mutations. Successful admin mutations
// are followed by a catalog refresh; if only that refresh fails the result
// is returned together with an error wrapping ErrCatalogRefresh.
type InventoryService interface {
	Create(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error)
	Update(ctx context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error)
	Delete(ctx context.Context, id int64) error
	Restock(ctx context.Context, req models.RestockRequest) (models.Sweet, error)

	// Purchase buys one unit and replaces the cached item with the server's
	// answer. A cached item with quantity 0 is refused with ErrOutOfStock
	// before any request is made.
	Purchase(ctx context.Context, id int64) (models.Sweet, error)
}

// AuthService handles account creation.
type AuthService interface {
	// Register validates req, creates the account and then logs in with
	// the same credentials. A non-nil error means the account was not
	// created; the LoginResult reports the follow-up login.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error)
}

// CatalogRefreshJob periodically refreshes the catalog in the background.
type CatalogRefreshJob interface {
	// Start launches the refresh loop. A zero or negative interval leaves
	// the job idle. A previously running loop is replaced and has exited
	// by the time Start returns.
	Start(ctx context.Context, interval time.Duration)

	// Stop ends the loop and waits for it to exit. Safe to call when idle.
	Stop()

	// Results delivers the outcome of each background refresh. Values are
	// dropped when nobody is listening.
	Results() <-chan error
}
