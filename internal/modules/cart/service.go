package cart

import (
	"context"
	"fmt"
)

// MaxLineQuantity bounds a single add so a mistyped command cannot
// request an absurd amount.
const MaxLineQuantity = 100

// ErrQuantityRange rejects adds whose quantity falls outside the
// accepted range. Callers can branch on it with errors.Is.
var ErrQuantityRange = fmt.Errorf("quantity must be between 1 and %d", MaxLineQuantity)

// Service defines the cart business logic. Every operation takes the
// session user id explicitly; there is no implicit current user.
type Service interface {
	// Add puts quantity units of a product in the user's cart,
	// incrementing the existing line if one exists, and returns a
	// confirmation message.
	Add(ctx context.Context, userID string, productID int64, productName string, quantity int) (string, error)

	// Remove deletes a cart line. Removing an absent line is a no-op
	// that still confirms.
	Remove(ctx context.Context, userID string, productID int64) (string, error)

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID string) (string, error)

	// List returns the cart joined against current catalog pricing.
	List(ctx context.Context, userID string) ([]*Item, error)

	// Checkout acknowledges a checkout request. It records nothing; order
	// placement is outside this system.
	Checkout(ctx context.Context, userID string) (string, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Add(ctx context.Context, userID string, productID int64, productName string, quantity int) (string, error) {
	if quantity < 1 || quantity > MaxLineQuantity {
		return "", ErrQuantityRange
	}
	line := &Line{
		UserID:      userID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
	}
	if err := s.repo.Upsert(ctx, line); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (x%d) added to cart!", productName, quantity), nil
}

func (s *service) Remove(ctx context.Context, userID string, productID int64) (string, error) {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return "", err
	}
	return "Product removed from cart.", nil
}

func (s *service) Clear(ctx context.Context, userID string) (string, error) {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return "", err
	}
	return "Cart cleared successfully.", nil
}

func (s *service) List(ctx context.Context, userID string) ([]*Item, error) {
	return s.repo.List(ctx, userID)
}

func (s *service) Checkout(ctx context.Context, userID string) (string, error) {
	return "Checkout process initiated!", nil
}

// Total sums the running price of the cart at current catalog prices.
func Total(items []*Item) float64 {
	var total float64
	for _, i := range items {
		total += i.SellingPrice * float64(i.Quantity)
	}
	return total
}
