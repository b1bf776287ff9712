package sales

import (
	"log/slog"

	"salesreport/pkg/contracts/domain"
)

// MaxTopProducts is the number of best selling products kept per seller.
const MaxTopProducts = 10

// Options configures one analysis run.
type Options struct {
	Revenue RevenuePolicy
	Bonus   BonusPolicy

	// Workers > 1 enables aggregation partitioned by seller.
	Workers int
	Logger  *slog.Logger
}

// SellerView is a read-only snapshot of a seller's accumulated figures handed to policies.
type SellerView struct {
	ID         string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int
}

// SellerStats accumulates one seller's figures during a single run.
type SellerStats struct {
	ID         string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int

	// Set by the ranking stage
	Bonus       float64
	TopProducts []domain.ProductSales

	sold  map[string]int
	order []string
}

func newSellerStats(seller domain.Seller) *SellerStats {
	return &SellerStats{
		ID:   seller.ID,
		Name: seller.FullName(),
		sold: make(map[string]int),
	}
}

// addSold increases the cumulative quantity of sku, remembering first occurrence order.
func (s *SellerStats) addSold(sku string, quantity int) {
	if _, ok := s.sold[sku]; !ok {
		s.order = append(s.order, sku)
	}
	s.sold[sku] += quantity
}

// ProductsSold returns cumulative quantities per sku in first occurrence order.
func (s *SellerStats) ProductsSold() []domain.ProductSales {
	out := make([]domain.ProductSales, 0, len(s.order))
	for _, sku := range s.order {
		out = append(out, domain.ProductSales{SKU: sku, Quantity: s.sold[sku]})
	}
	return out
}

// View returns a snapshot of the accumulated figures.
func (s *SellerStats) View() SellerView {
	return SellerView{
		ID:         s.ID,
		Name:       s.Name,
		Revenue:    s.Revenue,
		Profit:     s.Profit,
		SalesCount: s.SalesCount,
	}
}
