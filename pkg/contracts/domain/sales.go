package domain

// Seller is a party making sales, identified by ID.
type Seller struct {
	ID        string `json:"id" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	StartDate string `json:"start_date,omitempty"`
	Position  string `json:"position,omitempty"`
}

// FullName returns the seller's display name as used in reports.
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Product is a catalog entry looked up by SKU.
type Product struct {
	SKU           string  `json:"sku" validate:"required"`
	Name          string  `json:"name,omitempty"`
	Category      string  `json:"category,omitempty"`
	PurchasePrice float64 `json:"purchase_price" validate:"gte=0"` // Unit cost
	SalePrice     float64 `json:"sale_price,omitempty" validate:"gte=0"`
}

// LineItem is a single product line within a purchase record.
type LineItem struct {
	SKU       string  `json:"sku" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	SalePrice float64 `json:"sale_price" validate:"gte=0"`
	Discount  float64 `json:"discount" validate:"gte=0,lte=100"` // Percentage 0-100
}

// PurchaseRecord is one checkout transaction attributed to one seller.
type PurchaseRecord struct {
	ReceiptID     string     `json:"receipt_id,omitempty"`
	Date          string     `json:"date,omitempty"`
	SellerID      string     `json:"seller_id" validate:"required"`
	CustomerID    string     `json:"customer_id,omitempty"`
	Items         []LineItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64    `json:"total_amount"`
	TotalDiscount float64    `json:"total_discount,omitempty"`
}

// Dataset holds the three raw collections a report is computed from.
type Dataset struct {
	Sellers         []Seller         `json:"sellers" validate:"required,min=1,dive"`
	Products        []Product        `json:"products" validate:"required,min=1,dive"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records" validate:"required,min=1,dive"`
}
