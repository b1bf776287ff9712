// Package dataset loads sales datasets from JSON documents and Excel workbooks
// and checks them against the field rules declared on the domain types.
//
// A JSON dataset has the shape
//
//	{"sellers": [...], "products": [...], "purchase_records": [...]}
//
// A workbook carries one sheet per collection (sellers, products,
// purchase_records) plus an items sheet whose rows are attached to their
// purchase record by receipt_id. Header cells are matched case-insensitively.
package dataset
