package cart

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Upsert(ctx context.Context, line *Line) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart (user_id, product_id, product_name, quantity)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity`,
		line.UserID, line.ProductID, line.ProductName, line.Quantity)
	if err != nil {
		return fmt.Errorf("upsert cart line: %w", err)
	}
	return nil
}

func (r *postgresRepo) Remove(ctx context.Context, userID string, productID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart WHERE user_id=$1 AND product_id=$2`, userID, productID)
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart WHERE user_id=$1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *postgresRepo) List(ctx context.Context, userID string) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.product_id, c.product_name, p.selling_price, p.image_url, c.quantity
		FROM cart c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id=$1
		ORDER BY c.product_name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		i := &Item{}
		if err := rows.Scan(&i.ProductID, &i.ProductName, &i.SellingPrice, &i.ImageURL, &i.Quantity); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
