package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"salesreport/pkg/contracts/domain"
)

// Sheet names of an exported workbook
const (
	SheetSellers     = "Sellers"
	SheetTopProducts = "TopProducts"
)

// WriteCSV writes one row per seller to path.
func WriteCSV(path string, reports []domain.SellerReport) error {
	return NewCSVWriter(nil).WriteCSV(path, WriteOptions{
		Headers:   SellerHeaders,
		Records:   sellerRecords(reports),
		BOMPrefix: true,
	})
}

// WriteJSON writes the report envelope as indented JSON.
func WriteJSON(path string, report *domain.Report) error {
	if report == nil {
		return fmt.Errorf("report is nil")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// WriteXLSX writes a workbook with a Sellers sheet and a TopProducts sheet.
func WriteXLSX(path string, reports []domain.SellerReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSellers); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetTopProducts); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeRow(f, SheetSellers, 1, toRow(SellerHeaders)); err != nil {
		return err
	}
	if err := writeRow(f, SheetTopProducts, 1, toRow(TopProductHeaders)); err != nil {
		return err
	}

	productRow := 2
	for i, r := range reports {
		if err := writeRow(f, SheetSellers, i+2, []interface{}{
			r.SellerID,
			r.Name,
			r.Revenue,
			r.Profit,
			r.SalesCount,
			r.Bonus,
			formatTopProducts(r.TopProducts),
		}); err != nil {
			return err
		}

		for rank, p := range r.TopProducts {
			if err := writeRow(f, SheetTopProducts, productRow, []interface{}{
				r.SellerID, rank + 1, p.SKU, p.Quantity,
			}); err != nil {
				return err
			}
			productRow++
		}
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if last := len(reports) + 1; last > 1 {
		for _, cols := range [][2]string{{"C", "D"}, {"F", "F"}} {
			if err := f.SetCellStyle(SheetSellers, cols[0]+"2", fmt.Sprintf("%s%d", cols[1], last), style); err != nil {
				return fmt.Errorf("failed to style cells: %w", err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toRow(headers []string) []interface{} {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return row
}

// Export writes the report in every requested format to dir, naming files base.<ext>.
// It returns the written paths in the order of formats.
func Export(ctx context.Context, logger *slog.Logger, dir, base string, report *domain.Report, formats []domain.ReportFormat) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if report == nil {
		return nil, fmt.Errorf("report is nil")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(formats))
	for _, format := range formats {
		path := filepath.Join(dir, base+"."+string(format))

		var err error
		switch format {
		case domain.ReportFormatCSV:
			err = WriteCSV(path, report.Sellers)
		case domain.ReportFormatJSON:
			err = WriteJSON(path, report)
		case domain.ReportFormatExcel:
			err = WriteXLSX(path, report.Sellers)
		default:
			err = fmt.Errorf("unsupported report format: %s", format)
		}
		if err != nil {
			return written, fmt.Errorf("export %s: %w", format, err)
		}

		logger.InfoContext(ctx, "Report exported",
			slog.String("report_id", report.ID),
			slog.String("format", string(format)),
			slog.String("path", path))
		written = append(written, path)
	}

	return written, nil
}
