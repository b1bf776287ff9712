package sales

import "salesreport/pkg/contracts/domain"

// index holds the lookup structures of one run.
type index struct {
	// one accumulator per input seller, in input order
	stats    []*SellerStats
	sellers  map[string]*SellerStats
	products map[string]domain.Product
}

// buildIndex creates a zeroed accumulator per seller and a catalog lookup.
// Duplicate seller ids or skus resolve to their last occurrence.
func buildIndex(data *domain.Dataset) *index {
	idx := &index{
		stats:    make([]*SellerStats, 0, len(data.Sellers)),
		sellers:  make(map[string]*SellerStats, len(data.Sellers)),
		products: make(map[string]domain.Product, len(data.Products)),
	}

	for _, seller := range data.Sellers {
		stats := newSellerStats(seller)
		idx.stats = append(idx.stats, stats)
		idx.sellers[seller.ID] = stats
	}

	for _, product := range data.Products {
		idx.products[product.SKU] = product
	}

	return idx
}
