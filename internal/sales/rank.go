package sales

import (
	"sort"

	"salesreport/pkg/contracts/domain"
)

// rank orders sellers by profit descending, keeping input order on ties, then assigns
// each seller its bonus and top products. The resulting order is the report order.
func rank(stats []*SellerStats, bonus BonusPolicy) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})

	total := len(stats)
	for i, seller := range stats {
		seller.Bonus = bonus.Bonus(i, total, seller.View())
		seller.TopProducts = topProducts(seller.ProductsSold(), MaxTopProducts)
	}
}

// topProducts sorts by quantity descending, ties keeping first occurrence order, and
// keeps at most limit entries.
func topProducts(sold []domain.ProductSales, limit int) []domain.ProductSales {
	sort.SliceStable(sold, func(i, j int) bool {
		return sold[i].Quantity > sold[j].Quantity
	})
	if len(sold) > limit {
		sold = sold[:limit]
	}
	return sold
}
