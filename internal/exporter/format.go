package exporter

import (
	"strconv"
	"strings"

	"salesreport/pkg/contracts/domain"
)

// SellerHeaders are the column names of the per-seller tables
var SellerHeaders = []string{"SellerID", "Name", "Revenue", "Profit", "SalesCount", "Bonus", "TopProducts"}

// TopProductHeaders are the column names of the top products table
var TopProductHeaders = []string{"seller_id", "rank", "sku", "quantity"}

// formatFloat formats a float64 value with exactly 2 decimal places
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// formatTopProducts packs top products as "sku:qty;sku:qty"
func formatTopProducts(products []domain.ProductSales) string {
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = p.SKU + ":" + strconv.Itoa(p.Quantity)
	}
	return strings.Join(parts, ";")
}

// sellerRecords renders one CSV row per seller report
func sellerRecords(reports []domain.SellerReport) [][]string {
	records := make([][]string, len(reports))
	for i, r := range reports {
		records[i] = []string{
			r.SellerID,
			r.Name,
			formatFloat(r.Revenue),
			formatFloat(r.Profit),
			strconv.Itoa(r.SalesCount),
			formatFloat(r.Bonus),
			formatTopProducts(r.TopProducts),
		}
	}
	return records
}
