package catalog

import "context"

// Repository defines the interface for product catalog reads.
type Repository interface {
	Search(ctx context.Context, keyword string) ([]*Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
}
