package domain

import (
	"time"
)

// ProductSales is a product's cumulative sold quantity for one seller.
type ProductSales struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// SellerReport is the final per-seller performance figure set.
// Revenue, Profit and Bonus are rounded to 2 decimal places.
type SellerReport struct {
	SellerID    string         `json:"seller_id"`
	Name        string         `json:"name"`
	Revenue     float64        `json:"revenue"`
	Profit      float64        `json:"profit"`
	SalesCount  int            `json:"sales_count"`
	TopProducts []ProductSales `json:"top_products"`
	Bonus       float64        `json:"bonus"`
}

// ReportTotals aggregates the rounded seller figures of a report.
type ReportTotals struct {
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	BonusPool  float64 `json:"bonus_pool"`
	SalesCount int     `json:"sales_count"`
	Sellers    int     `json:"sellers"`
}

// Report is one generated sales performance report, sellers ordered by profit descending.
type Report struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Sellers     []SellerReport `json:"sellers"`
	Totals      ReportTotals   `json:"totals"`
}

// ReportFormat defines an export format of a report
type ReportFormat string

const (
	ReportFormatCSV   ReportFormat = "csv"
	ReportFormatJSON  ReportFormat = "json"
	ReportFormatExcel ReportFormat = "xlsx"
)

// ParseReportFormat maps a user supplied format name to a ReportFormat.
func ParseReportFormat(s string) (ReportFormat, bool) {
	switch ReportFormat(s) {
	case ReportFormatCSV, ReportFormatJSON, ReportFormatExcel:
		return ReportFormat(s), true
	case "excel":
		return ReportFormatExcel, true
	default:
		return "", false
	}
}
