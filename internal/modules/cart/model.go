package cart

// Line is a persisted cart row, unique per (user, product). ProductName is
// denormalized at add time.
type Line struct {
	UserID      string `json:"user_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// Item is a cart line joined against the catalog, so the displayed price
// and image always reflect the catalog's current values.
type Item struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	SellingPrice float64 `json:"selling_price"`
	ImageURL     string  `json:"image_url"`
	Quantity     int     `json:"quantity"`
}

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
