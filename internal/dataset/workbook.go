package dataset

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apierrors "salesreport/internal/errors"
	"salesreport/pkg/contracts/domain"
)

// Sheet names of a dataset workbook
const (
	SheetSellers         = "sellers"
	SheetProducts        = "products"
	SheetPurchaseRecords = "purchase_records"
	SheetItems           = "items"
)

// LoadWorkbook reads a dataset from an .xlsx file.
func (l *Loader) LoadWorkbook(path string) (*domain.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apierrors.NewParsingError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	return readWorkbook(f)
}

// ReadWorkbook reads a dataset from an .xlsx stream.
func (l *Loader) ReadWorkbook(r io.Reader) (*domain.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apierrors.NewParsingError("failed to open workbook", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (*domain.Dataset, error) {
	var data domain.Dataset

	sellers, err := readSheet(f, SheetSellers, []string{"id", "first_name"}, func(r row) (domain.Seller, error) {
		return domain.Seller{
			ID:        r.str("id"),
			FirstName: r.str("first_name"),
			LastName:  r.str("last_name"),
			StartDate: r.str("start_date"),
			Position:  r.str("position"),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	data.Sellers = sellers

	products, err := readSheet(f, SheetProducts, []string{"sku", "purchase_price"}, func(r row) (domain.Product, error) {
		p := domain.Product{
			SKU:      r.str("sku"),
			Name:     r.str("name"),
			Category: r.str("category"),
		}
		var err error
		if p.PurchasePrice, err = r.number("purchase_price"); err != nil {
			return p, err
		}
		if p.SalePrice, err = r.number("sale_price"); err != nil {
			return p, err
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	data.Products = products

	records, err := readSheet(f, SheetPurchaseRecords, []string{"receipt_id", "seller_id", "total_amount"}, func(r row) (domain.PurchaseRecord, error) {
		rec := domain.PurchaseRecord{
			ReceiptID:  r.str("receipt_id"),
			Date:       r.str("date"),
			SellerID:   r.str("seller_id"),
			CustomerID: r.str("customer_id"),
		}
		var err error
		if rec.TotalAmount, err = r.number("total_amount"); err != nil {
			return rec, err
		}
		if rec.TotalDiscount, err = r.number("total_discount"); err != nil {
			return rec, err
		}
		return rec, nil
	})
	if err != nil {
		return nil, err
	}

	type keyedItem struct {
		receiptID string
		rowNum    int
		item      domain.LineItem
	}
	items, err := readSheet(f, SheetItems, []string{"receipt_id", "sku", "quantity", "sale_price"}, func(r row) (keyedItem, error) {
		it := keyedItem{receiptID: r.str("receipt_id"), rowNum: r.num}
		it.item.SKU = r.str("sku")
		var err error
		if it.item.Quantity, err = r.integer("quantity"); err != nil {
			return it, err
		}
		if it.item.SalePrice, err = r.number("sale_price"); err != nil {
			return it, err
		}
		if it.item.Discount, err = r.number("discount"); err != nil {
			return it, err
		}
		return it, nil
	})
	if err != nil {
		return nil, err
	}

	byReceipt := make(map[string]int, len(records))
	for i, rec := range records {
		if _, dup := byReceipt[rec.ReceiptID]; dup {
			return nil, apierrors.NewDataError(
				fmt.Sprintf("duplicate receipt_id %q in sheet %s", rec.ReceiptID, SheetPurchaseRecords), nil).
				WithContext("sheet", SheetPurchaseRecords).
				WithContext("receipt_id", rec.ReceiptID)
		}
		byReceipt[rec.ReceiptID] = i
	}
	for _, it := range items {
		i, ok := byReceipt[it.receiptID]
		if !ok {
			return nil, apierrors.NewDataError(
				fmt.Sprintf("sheet %s row %d references unknown receipt_id %q", SheetItems, it.rowNum, it.receiptID), nil).
				WithContext("sheet", SheetItems).
				WithContext("row", it.rowNum).
				WithContext("receipt_id", it.receiptID)
		}
		records[i].Items = append(records[i].Items, it.item)
	}
	data.PurchaseRecords = records

	return &data, nil
}

// row is one data row of a sheet with its header index.
type row struct {
	sheet   string
	num     int // 1-based spreadsheet row number
	cells   []string
	columns map[string]int
}

func (r row) str(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

// number parses a numeric cell; an empty or absent cell is zero.
func (r row) number(column string) (float64, error) {
	s := r.str(column)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.cellError(column, s, err)
	}
	return v, nil
}

// integer parses an integral cell, accepting "3" and "3.0" alike.
func (r row) integer(column string) (int, error) {
	s := r.str(column)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.cellError(column, s, err)
	}
	if f != math.Trunc(f) {
		return 0, r.cellError(column, s, fmt.Errorf("not a whole number"))
	}
	return int(f), nil
}

func (r row) cellError(column, value string, cause error) error {
	return apierrors.NewParsingError(
		fmt.Sprintf("sheet %s row %d column %s: invalid number %q", r.sheet, r.num, column, value), cause).
		WithContext("sheet", r.sheet).
		WithContext("row", r.num).
		WithContext("column", column)
}

// readSheet maps every non-blank data row of a sheet through parse.
func readSheet[T any](f *excelize.File, sheet string, required []string, parse func(row) (T, error)) ([]T, error) {
	name, ok := findSheet(f, sheet)
	if !ok {
		return nil, apierrors.NewParsingError(fmt.Sprintf("workbook has no %s sheet", sheet), nil).
			WithContext("sheet", sheet)
	}

	// Raw values: number formats would round or add separators to stored figures
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apierrors.NewParsingError(fmt.Sprintf("failed to read sheet %s", sheet), err).
			WithContext("sheet", sheet)
	}
	if len(rows) == 0 {
		return nil, apierrors.NewParsingError(fmt.Sprintf("sheet %s has no header row", sheet), nil).
			WithContext("sheet", sheet)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if _, seen := columns[key]; key != "" && !seen {
			columns[key] = i
		}
	}
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, apierrors.NewParsingError(
				fmt.Sprintf("sheet %s is missing required column %s", sheet, col), nil).
				WithContext("sheet", sheet).
				WithContext("column", col)
		}
	}

	out := make([]T, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}
		v, err := parse(row{sheet: sheet, num: i + 2, cells: cells, columns: columns})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// findSheet matches a sheet name case-insensitively, ignoring surrounding spaces.
func findSheet(f *excelize.File, want string) (string, bool) {
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(name), want) {
			return name, true
		}
	}
	return "", false
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
