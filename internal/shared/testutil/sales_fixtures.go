package testutil

import (
	"salesreport/pkg/contracts/domain"
)

// FixtureDataset returns the two seller dataset mirrored by
// internal/dataset/testdata/dataset.json.
//
// Expected: seller_1 revenue 180 profit 80 bonus 12, seller_2 revenue 130
// profit 67.5 bonus 6.75.
func FixtureDataset() *domain.Dataset {
	return NewDatasetBuilder().
		Seller("seller_1", "Alexey", "Petrov").
		Seller("seller_2", "Maria", "Sidorova").
		Product("SKU_001", 50).
		Product("SKU_002", 2.5).
		Record("seller_1", 180, Item("SKU_001", 2, 100, 10)).
		Record("seller_2", 130, Item("SKU_002", 5, 6, 0), Item("SKU_001", 1, 100, 0)).
		Build()
}

// DatasetBuilder assembles datasets for tests
type DatasetBuilder struct {
	data domain.Dataset
}

// NewDatasetBuilder creates an empty builder
func NewDatasetBuilder() *DatasetBuilder {
	return &DatasetBuilder{}
}

// Seller appends a seller
func (b *DatasetBuilder) Seller(id, firstName, lastName string) *DatasetBuilder {
	b.data.Sellers = append(b.data.Sellers, domain.Seller{ID: id, FirstName: firstName, LastName: lastName})
	return b
}

// Product appends a product with its unit purchase price
func (b *DatasetBuilder) Product(sku string, purchasePrice float64) *DatasetBuilder {
	b.data.Products = append(b.data.Products, domain.Product{SKU: sku, PurchasePrice: purchasePrice})
	return b
}

// Record appends a purchase record
func (b *DatasetBuilder) Record(sellerID string, total float64, items ...domain.LineItem) *DatasetBuilder {
	b.data.PurchaseRecords = append(b.data.PurchaseRecords, domain.PurchaseRecord{
		SellerID:    sellerID,
		TotalAmount: total,
		Items:       items,
	})
	return b
}

// Build returns a copy of the assembled dataset
func (b *DatasetBuilder) Build() *domain.Dataset {
	out := &domain.Dataset{
		Sellers:         append([]domain.Seller(nil), b.data.Sellers...),
		Products:        append([]domain.Product(nil), b.data.Products...),
		PurchaseRecords: append([]domain.PurchaseRecord(nil), b.data.PurchaseRecords...),
	}
	return out
}

// Item builds a line item; discount is a percentage
func Item(sku string, quantity int, salePrice, discount float64) domain.LineItem {
	return domain.LineItem{SKU: sku, Quantity: quantity, SalePrice: salePrice, Discount: discount}
}
