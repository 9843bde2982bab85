package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// defaultListLimit caps an unfiltered catalog listing so an empty search
// keyword returns a bounded default set instead of the whole table.
const defaultListLimit = 50

const productColumns = `id, product_name, selling_price, mrp_price, discount_percent, product_link,
       category, category_url, image_url, manufacturer_name, sku_master_id, cleaned_description`

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Search(ctx context.Context, keyword string) ([]*Product, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if keyword == "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			ORDER BY id
			LIMIT $1`, defaultListLimit)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE to_tsvector('english', product_name || ' ' || cleaned_description)
			      @@ plainto_tsquery('english', $1)
			ORDER BY ts_rank(to_tsvector('english', product_name || ' ' || cleaned_description),
			                 plainto_tsquery('english', $1)) DESC, id`, keyword)
	}
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE id=$1`, id)
	return scanProduct(row.Scan)
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.ProductName, &p.SellingPrice, &p.MRPPrice, &p.DiscountPercent,
		&p.ProductLink, &p.Category, &p.CategoryURL, &p.ImageURL,
		&p.ManufacturerName, &p.SKUMasterID, &p.CleanedDescription)
	if err != nil {
		return nil, err
	}
	return p, nil
}
