package sales

import (
	"fmt"

	"salesreport/pkg/contracts/domain"
)

func defaultOptions() Options {
	return Options{
		Revenue: SimpleRevenue,
		Bonus:   BonusByProfit,
	}
}

func record(sellerID string, total float64, items ...domain.LineItem) domain.PurchaseRecord {
	return domain.PurchaseRecord{
		SellerID:    sellerID,
		TotalAmount: total,
		Items:       items,
	}
}

func item(sku string, quantity int, salePrice, discount float64) domain.LineItem {
	return domain.LineItem{
		SKU:       sku,
		Quantity:  quantity,
		SalePrice: salePrice,
		Discount:  discount,
	}
}

// fiveSellerDataset uses whole numbers only so sums are exact in any order.
//
// Expected ranking: C(110), A(30), B(30), E(20), D(0).
func fiveSellerDataset() *domain.Dataset {
	return &domain.Dataset{
		Sellers: []domain.Seller{
			{ID: "A", FirstName: "Alexey", LastName: "Petrov"},
			{ID: "B", FirstName: "Boris", LastName: "Ivanov"},
			{ID: "C", FirstName: "Clara", LastName: "Sokolova"},
			{ID: "D", FirstName: "Daria", LastName: "Orlova"},
			{ID: "E", FirstName: "Egor", LastName: "Volkov"},
		},
		Products: []domain.Product{
			{SKU: "P1", PurchasePrice: 10},
			{SKU: "P2", PurchasePrice: 20},
			{SKU: "P3", PurchasePrice: 5},
		},
		PurchaseRecords: []domain.PurchaseRecord{
			record("A", 60, item("P1", 3, 20, 0)),
			record("B", 50, item("P2", 1, 50, 0)),
			record("C", 150, item("P3", 10, 15, 0)),
			record("D", 10, item("P1", 1, 10, 0)),
			record("E", 60, item("P2", 2, 30, 0)),
			record("C", 30, item("P1", 2, 15, 0)),
		},
	}
}

// generatedDataset builds a larger dataset with fractional discounts.
func generatedDataset(sellers, products, records int) *domain.Dataset {
	data := &domain.Dataset{}
	for i := 0; i < sellers; i++ {
		data.Sellers = append(data.Sellers, domain.Seller{
			ID:        fmt.Sprintf("seller_%d", i+1),
			FirstName: fmt.Sprintf("First%d", i+1),
			LastName:  fmt.Sprintf("Last%d", i+1),
		})
	}
	for i := 0; i < products; i++ {
		data.Products = append(data.Products, domain.Product{
			SKU:           fmt.Sprintf("SKU_%03d", i+1),
			PurchasePrice: 3.17 + float64(i%13)*1.31,
		})
	}
	for i := 0; i < records; i++ {
		var items []domain.LineItem
		var total float64
		for j := 0; j < 1+i%4; j++ {
			it := item(
				fmt.Sprintf("SKU_%03d", (i*7+j*3)%products+1),
				1+(i+j)%6,
				9.99+float64((i+j)%17)*2.5,
				float64((i*j)%25),
			)
			items = append(items, it)
			total += simpleRevenue(it)
		}
		data.PurchaseRecords = append(data.PurchaseRecords,
			record(fmt.Sprintf("seller_%d", i%sellers+1), total, items...))
	}
	return data
}
