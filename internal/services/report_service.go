package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"salesreport/internal/config"
	"salesreport/internal/dataset"
	"salesreport/internal/infrastructure"
	"salesreport/internal/sales"
	"salesreport/pkg/contracts/domain"
)

// ReportService generates sales performance reports
type ReportService struct {
	opts     sales.Options
	analyzer *sales.Analyzer
	loader   *dataset.Loader
	metrics  *infrastructure.BusinessMetrics
	tracer   trace.Tracer
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

// ReportServiceOption customizes a ReportService
type ReportServiceOption func(*ReportService)

// WithMetrics records run metrics on m
func WithMetrics(m *infrastructure.BusinessMetrics) ReportServiceOption {
	return func(s *ReportService) { s.metrics = m }
}

// WithTracer replaces the global tracer
func WithTracer(t trace.Tracer) ReportServiceOption {
	return func(s *ReportService) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithRevenuePolicy replaces the default revenue policy
func WithRevenuePolicy(p sales.RevenuePolicy) ReportServiceOption {
	return func(s *ReportService) { s.opts.Revenue = p }
}

// WithClock fixes the report timestamp source
func WithClock(now func() time.Time) ReportServiceOption {
	return func(s *ReportService) { s.now = now }
}

// NewReportService creates a report service from the report configuration
func NewReportService(cfg config.ReportConfig, logger *slog.Logger, opts ...ReportServiceOption) (*ReportService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	schedule := cfg.Bonus.Schedule()
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bonus schedule: %w", err)
	}

	s := &ReportService{
		opts: sales.Options{
			Revenue: sales.SimpleRevenue,
			Bonus:   schedule,
			Workers: cfg.Workers,
			Logger:  logger,
		},
		loader: dataset.NewLoader(logger),
		tracer: otel.Tracer(infrastructure.MeterName),
		logger: logger.With(slog.String("component", "report_service")),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(s)
	}
	s.analyzer = sales.NewAnalyzer(s.opts)

	logger.Info("ReportService initialized",
		slog.Int("workers", cfg.Workers),
		slog.Float64("bonus_first", schedule.First),
		slog.Float64("bonus_podium", schedule.Podium),
		slog.Float64("bonus_default", schedule.Default),
		slog.Float64("bonus_last", schedule.Last))

	return s, nil
}

// Loader returns the dataset loader used by the service
func (s *ReportService) Loader() *dataset.Loader {
	return s.loader
}

// Generate computes a report for data. No partial report is returned on error.
func (s *ReportService) Generate(ctx context.Context, data *domain.Dataset) (*domain.Report, error) {
	if data == nil {
		return nil, ErrNilDataset
	}

	ctx, span := s.tracer.Start(ctx, "ReportService.Generate",
		trace.WithAttributes(
			attribute.Int("dataset.sellers", len(data.Sellers)),
			attribute.Int("dataset.products", len(data.Products)),
			attribute.Int("dataset.purchase_records", len(data.PurchaseRecords)),
		))
	defer span.End()

	start := time.Now()
	sellers, err := s.analyzer.Analyze(ctx, data)
	duration := time.Since(start)

	if err != nil {
		infrastructure.RecordReportMetrics(ctx, s.metrics, duration, 0, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "report generation failed")
		s.logger.WarnContext(ctx, "report generation failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", duration))
		return nil, err
	}

	report := &domain.Report{
		ID:          s.newID(),
		GeneratedAt: s.now().UTC(),
		Sellers:     sellers,
		Totals:      Totals(sellers),
	}

	infrastructure.RecordReportMetrics(ctx, s.metrics, duration, len(sellers), nil)
	span.SetAttributes(attribute.String("report.id", report.ID))

	s.logger.InfoContext(ctx, "report generated",
		slog.String("report_id", report.ID),
		slog.Int("sellers", len(sellers)),
		slog.Float64("revenue", report.Totals.Revenue),
		slog.Float64("profit", report.Totals.Profit),
		slog.Duration("duration", duration))

	return report, nil
}

// GenerateFromFile loads, validates and reports on a dataset file (.json or .xlsx)
func (s *ReportService) GenerateFromFile(ctx context.Context, path string) (*domain.Report, error) {
	data, err := s.loader.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := s.loader.Validate(data); err != nil {
		return nil, err
	}
	return s.Generate(ctx, data)
}

// Totals sums the rounded seller figures of a report
func Totals(sellers []domain.SellerReport) domain.ReportTotals {
	var t domain.ReportTotals
	for _, r := range sellers {
		t.Revenue += r.Revenue
		t.Profit += r.Profit
		t.BonusPool += r.Bonus
		t.SalesCount += r.SalesCount
	}
	t.Revenue = sales.Round2(t.Revenue)
	t.Profit = sales.Round2(t.Profit)
	t.BonusPool = sales.Round2(t.BonusPool)
	t.Sellers = len(sellers)
	return t
}
