package sales

import (
	"math"

	"salesreport/pkg/contracts/domain"
)

// Round2 rounds to 2 decimal places, halves away from zero.
// The half is judged on v*100, not on the exact binary value of v, so inputs
// stored just below a tie round up: 954.425 gives 954.43 where JavaScript's
// toFixed(2) gives 954.42.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// format projects ranked accumulators into reports, preserving their order.
func format(stats []*SellerStats) []domain.SellerReport {
	reports := make([]domain.SellerReport, 0, len(stats))
	for _, s := range stats {
		top := make([]domain.ProductSales, len(s.TopProducts))
		copy(top, s.TopProducts)

		reports = append(reports, domain.SellerReport{
			SellerID:    s.ID,
			Name:        s.Name,
			Revenue:     Round2(s.Revenue),
			Profit:      Round2(s.Profit),
			SalesCount:  s.SalesCount,
			TopProducts: top,
			Bonus:       Round2(s.Bonus),
		})
	}
	return reports
}
