package exporter

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salesreport/internal/config"
	"salesreport/internal/shared/testutil"
	"salesreport/pkg/contracts/domain"
)

func sampleReport() *domain.Report {
	sellers := []domain.SellerReport{
		{
			SellerID:   "seller_1",
			Name:       "Alexey Petrov",
			Revenue:    180,
			Profit:     80,
			SalesCount: 1,
			Bonus:      12,
			TopProducts: []domain.ProductSales{
				{SKU: "SKU_001", Quantity: 2},
			},
		},
		{
			SellerID:   "seller_2",
			Name:       "Maria Sidorova, Jr.",
			Revenue:    130.5,
			Profit:     -7.25,
			SalesCount: 3,
			Bonus:      0,
			TopProducts: []domain.ProductSales{
				{SKU: "SKU_002", Quantity: 5},
				{SKU: "SKU_001", Quantity: 1},
			},
		},
		{
			SellerID:    "seller_3",
			Name:        "Ivan Ivanov",
			TopProducts: []domain.ProductSales{},
		},
	}
	return &domain.Report{
		ID:          "5b6c2d4e-0000-4000-8000-000000000001",
		GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Sellers:     sellers,
		Totals:      domain.ReportTotals{Revenue: 310.5, Profit: 72.75, BonusPool: 12, SalesCount: 4, Sellers: 3},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")

	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.csv")
	require.NoError(t, WriteCSV(path, sampleReport().Sellers))

	assert.Equal(t, [][]string{
		SellerHeaders,
		{"seller_1", "Alexey Petrov", "180.00", "80.00", "1", "12.00", "SKU_001:2"},
		{"seller_2", "Maria Sidorova, Jr.", "130.50", "-7.25", "3", "0.00", "SKU_002:5;SKU_001:1"},
		{"seller_3", "Ivan Ivanov", "0.00", "0.00", "0", "0.00", ""},
	}, readCSV(t, path))
}

func TestWriteCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, WriteCSV(path, sampleReport().Sellers))
	require.NoError(t, WriteCSV(path, sampleReport().Sellers[:1]))

	assert.Len(t, readCSV(t, path), 2)
}

func TestCSVWriterResolvesAgainstReportsDir(t *testing.T) {
	paths := &config.Paths{ReportsDir: t.TempDir()}
	w := NewCSVWriter(paths)

	require.NoError(t, w.WriteCSV("summary.csv", WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "2"}},
	}))

	raw, err := os.ReadFile(filepath.Join(paths.ReportsDir, "summary.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(raw))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := sampleReport()
	require.NoError(t, WriteJSON(path, report))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *report, decoded)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Contains(t, envelope, "id")
	assert.Contains(t, envelope, "generated_at")
	assert.Contains(t, envelope, "sellers")

	assert.Error(t, WriteJSON(path, nil))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(path, sampleReport().Sellers))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSellers, SheetTopProducts}, f.GetSheetList())

	sellers, err := f.GetRows(SheetSellers)
	require.NoError(t, err)
	require.Len(t, sellers, 4)
	assert.Equal(t, SellerHeaders, sellers[0])
	assert.Equal(t, []string{"seller_1", "Alexey Petrov", "180.00", "80.00", "1", "12.00", "SKU_001:2"}, sellers[1])

	revenue, err := f.GetCellValue(SheetSellers, "C3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "130.5", revenue)

	products, err := f.GetRows(SheetTopProducts)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		TopProductHeaders,
		{"seller_1", "1", "SKU_001", "2"},
		{"seller_2", "1", "SKU_002", "5"},
		{"seller_2", "2", "SKU_001", "1"},
	}, products)
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	report := sampleReport()

	logger, logs := testutil.NewTestLogger(t)
	written, err := Export(context.Background(), logger, dir, "sales_report", report, []domain.ReportFormat{
		domain.ReportFormatCSV,
		domain.ReportFormatJSON,
		domain.ReportFormatExcel,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "sales_report.csv"),
		filepath.Join(dir, "sales_report.json"),
		filepath.Join(dir, "sales_report.xlsx"),
	}, written)

	for _, path := range written {
		assert.FileExists(t, path)
	}

	records := logs.Records()
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, "Report exported", r.Message)
		assert.Equal(t, report.ID, r.Attrs["report_id"])
		assert.Equal(t, written[i], r.Attrs["path"])
	}
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()

	written, err := Export(context.Background(), nil, dir, "r", sampleReport(), []domain.ReportFormat{domain.ReportFormatCSV, "pdf"})
	assert.Error(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "r.csv")}, written)

	_, err = Export(context.Background(), nil, dir, "r", nil, []domain.ReportFormat{domain.ReportFormatCSV})
	assert.Error(t, err)
}

func TestFormatTopProducts(t *testing.T) {
	assert.Equal(t, "", formatTopProducts(nil))
	assert.Equal(t, "A:1;B:20", formatTopProducts([]domain.ProductSales{{SKU: "A", Quantity: 1}, {SKU: "B", Quantity: 20}}))
	assert.Equal(t, "-0.50", formatFloat(-0.5))
}
