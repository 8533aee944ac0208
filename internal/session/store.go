package session

import "context"

// Store abstracts persistence for session records. The collection is
// append-only from the pipeline's point of view; updates and deletes are
// administrative actions outside this system.
type Store interface {
	// Insert writes one complete record.
	Insert(ctx context.Context, record SessionRecord) error

	// FindByUser returns up to limit records for the user in natural
	// collection order.
	FindByUser(ctx context.Context, userID string, limit int) ([]SessionRecord, error)

	// FindRecentByUser returns up to limit records for the user sorted by
	// creation time descending.
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]SessionRecord, error)
}
