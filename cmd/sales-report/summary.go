package main

import (
	"fmt"
	"io"
	"strings"

	"salesreport/pkg/contracts/domain"
)

const summaryRowFormat = "%-4s %-12s %-24s %12s %12s %6s %10s  %s\n"

// printSummary writes the ranked sellers as a fixed-width table followed by the totals
func printSummary(w io.Writer, report *domain.Report) {
	fmt.Fprintf(w, "Sales report %s (%s)\n\n", report.ID, report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, summaryRowFormat, "#", "SELLER", "NAME", "REVENUE", "PROFIT", "SALES", "BONUS", "TOP PRODUCTS")

	for i, s := range report.Sellers {
		fmt.Fprintf(w, summaryRowFormat,
			fmt.Sprintf("%d", i+1),
			truncate(s.SellerID, 12),
			truncate(s.Name, 24),
			fmt.Sprintf("%.2f", s.Revenue),
			fmt.Sprintf("%.2f", s.Profit),
			fmt.Sprintf("%d", s.SalesCount),
			fmt.Sprintf("%.2f", s.Bonus),
			topProducts(s.TopProducts, 3),
		)
	}

	t := report.Totals
	fmt.Fprintln(w, strings.Repeat("-", 90))
	fmt.Fprintf(w, summaryRowFormat,
		"",
		"TOTAL",
		fmt.Sprintf("%d sellers", t.Sellers),
		fmt.Sprintf("%.2f", t.Revenue),
		fmt.Sprintf("%.2f", t.Profit),
		fmt.Sprintf("%d", t.SalesCount),
		fmt.Sprintf("%.2f", t.BonusPool),
		"",
	)
}

func topProducts(products []domain.ProductSales, limit int) string {
	if len(products) > limit {
		products = products[:limit]
	}
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = fmt.Sprintf("%s x%d", p.SKU, p.Quantity)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
