package cart

import "context"

// Repository defines the interface for cart line storage.
type Repository interface {
	// Upsert inserts the line, or adds its quantity to an existing line
	// for the same (user, product) in a single atomic statement.
	Upsert(ctx context.Context, line *Line) error
	Remove(ctx context.Context, userID string, productID int64) error
	Clear(ctx context.Context, userID string) error
	List(ctx context.Context, userID string) ([]*Item, error)
}
