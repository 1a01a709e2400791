// Package store keeps the client's durable state in a local sqlite file.
//
// The only durable state is the session: a handful of named string slots
// (the access token and the serialized user). [SessionSlotRepository] reads,
// writes and erases those slots; writes of several slots happen in one
// transaction so a reader never sees half of a login.
package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionSlotRepository persists named string slots.
type SessionSlotRepository interface {
	// LoadSlots returns the stored values of the requested slots. Missing
	// slots are absent from the map; that is not an error.
	LoadSlots(ctx context.Context, slots ...string) (map[string]string, error)

	// SaveSlots upserts every slot of values atomically.
	SaveSlots(ctx context.Context, values map[string]string) error

	// DeleteSlots erases the given slots. Erasing a missing slot is a no-op.
	DeleteSlots(ctx context.Context, slots ...string) error
}
