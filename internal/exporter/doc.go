// Package exporter writes generated sales reports to disk.
//
// Three formats are supported:
//
// CSV: one row per seller with 2-decimal fixed figures and the top products
// packed as "sku:qty;sku:qty". Files start with a UTF-8 BOM so Excel picks the
// right encoding.
//
// JSON: the whole report envelope, indented.
//
// XLSX: a Sellers sheet with the CSV columns and a TopProducts sheet with one
// row per (seller, rank).
//
// Example usage:
//
//	paths, err := exporter.Export(ctx, logger, dir, "sales_report_20240501", report,
//		[]domain.ReportFormat{domain.ReportFormatCSV, domain.ReportFormatExcel})
package exporter
