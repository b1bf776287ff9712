package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "salesreport/internal/errors"
	"salesreport/pkg/contracts/domain"
)

// Loader reads datasets from disk or streams.
type Loader struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:   logger.With(slog.String("component", "dataset_loader")),
		validate: newValidator(),
	}
}

// LoadFile reads a dataset, choosing the decoder from the file extension (.json or .xlsx).
func (l *Loader) LoadFile(ctx context.Context, path string) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	l.logger.DebugContext(ctx, "loading dataset",
		slog.String("path", path),
		slog.String("format", ext))

	var (
		data *domain.Dataset
		err  error
	)
	switch ext {
	case ".json":
		data, err = l.loadJSONFile(path)
	case ".xlsx":
		data, err = l.LoadWorkbook(path)
	default:
		return nil, apierrors.NewParsingError(
			fmt.Sprintf("unsupported dataset file extension %q", ext), nil).
			WithContext("path", path)
	}
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load dataset",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, err
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		slog.String("path", path),
		slog.Int("sellers", len(data.Sellers)),
		slog.Int("products", len(data.Products)),
		slog.Int("purchase_records", len(data.PurchaseRecords)))

	return data, nil
}

func (l *Loader) loadJSONFile(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apierrors.NewStorageError("failed to open dataset", err).WithContext("path", path)
	}
	defer f.Close()

	return l.LoadJSON(f)
}

// LoadJSON decodes a dataset document. Unknown fields are ignored.
func (l *Loader) LoadJSON(r io.Reader) (*domain.Dataset, error) {
	var data domain.Dataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, apierrors.NewParsingError("failed to decode dataset JSON", err)
	}
	return &data, nil
}

// Validate checks the dataset against its struct tags and reports every failing field.
func (l *Loader) Validate(data *domain.Dataset) error {
	return validateDataset(l.validate, data)
}
