package catalog

// Product is a row in the read-only product catalog.
type Product struct {
	ID                 int64   `json:"id"`
	ProductName        string  `json:"product_name"`
	SellingPrice       float64 `json:"selling_price"`
	MRPPrice           float64 `json:"mrp_price"`
	DiscountPercent    float64 `json:"discount_percent"`
	ProductLink        string  `json:"product_link"`
	Category           string  `json:"category"`
	CategoryURL        string  `json:"category_url"`
	ImageURL           string  `json:"image_url"`
	ManufacturerName   string  `json:"manufacturer_name"`
	SKUMasterID        string  `json:"sku_master_id"`
	CleanedDescription string  `json:"cleaned_description"`
}
