package catalog

import "context"

// Service defines catalog read logic.
type Service interface {
	// SearchProducts returns catalog rows ranked by relevance to keyword.
	// An empty keyword returns the default catalog listing, never an error.
	SearchProducts(ctx context.Context, keyword string) ([]*Product, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) SearchProducts(ctx context.Context, keyword string) ([]*Product, error) {
	return s.repo.Search(ctx, keyword)
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}
