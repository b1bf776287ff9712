package sales

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"salesreport/pkg/contracts/domain"
)

const tracerName = "salesreport/internal/sales"

// Analyzer runs the report pipeline with a fixed set of options.
type Analyzer struct {
	opts   Options
	logger *slog.Logger
	tracer trace.Tracer
}

// NewAnalyzer creates an analyzer. Policies are checked when Analyze runs, not here.
func NewAnalyzer(opts Options) *Analyzer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		opts:   opts,
		logger: logger.With(slog.String("component", "sales_analyzer")),
		tracer: otel.Tracer(tracerName),
	}
}

// Analyze computes one report per seller, ordered by profit descending.
// Any validation or referential error aborts the run and no report is returned.
func Analyze(ctx context.Context, data *domain.Dataset, opts Options) ([]domain.SellerReport, error) {
	return NewAnalyzer(opts).Analyze(ctx, data)
}

// Analyze computes one report per seller, ordered by profit descending.
// The context carries tracing and logging only; the computation itself is bounded and
// does not observe cancellation.
func (a *Analyzer) Analyze(ctx context.Context, data *domain.Dataset) ([]domain.SellerReport, error) {
	start := time.Now()

	ctx, span := a.tracer.Start(ctx, "sales.Analyze")
	defer span.End()

	if err := Validate(data, a.opts); err != nil {
		a.logger.ErrorContext(ctx, "input validation failed", slog.String("error", err.Error()))
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("sales.sellers", len(data.Sellers)),
		attribute.Int("sales.products", len(data.Products)),
		attribute.Int("sales.purchase_records", len(data.PurchaseRecords)),
		attribute.Int("sales.workers", a.opts.Workers),
	)

	idx := buildIndex(data)
	a.logger.DebugContext(ctx, "built lookup indexes",
		slog.Int("sellers", len(idx.sellers)),
		slog.Int("products", len(idx.products)))

	var err error
	if a.opts.Workers > 1 {
		err = idx.aggregatePartitioned(data.PurchaseRecords, a.opts.Revenue, a.opts.Workers)
	} else {
		err = idx.aggregate(data.PurchaseRecords, a.opts.Revenue)
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "aggregation failed", slog.String("error", err.Error()))
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregation failed")
		return nil, err
	}
	a.logger.DebugContext(ctx, "aggregated purchase records",
		slog.Int("records", len(data.PurchaseRecords)))

	rank(idx.stats, a.opts.Bonus)
	reports := format(idx.stats)

	a.logger.InfoContext(ctx, "sales report computed",
		slog.Int("sellers", len(reports)),
		slog.Int("purchase_records", len(data.PurchaseRecords)),
		slog.Duration("duration", time.Since(start)))

	return reports, nil
}
