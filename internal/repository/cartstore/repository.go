// Package cartstore is the storage adapter behind the cart engine's
// persistence port. The engine serializes itself to a domain.CartSnapshot;
// this package only moves snapshots in and out of postgres.
package cartstore

import (
	"context"

	"eventshop/internal/domain"
)

type Repository interface {
	// Load returns the snapshot for a session key, or domain.ErrNotFound.
	Load(ctx context.Context, sessionKey string) (*domain.CartSnapshot, error)
	// Save writes the snapshot, replacing any previous one for the key.
	Save(ctx context.Context, sessionKey string, snap domain.CartSnapshot) error
	// Delete drops the snapshot. Deleting an absent key is a no-op.
	Delete(ctx context.Context, sessionKey string) error
}
