package infrastructure

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitializeOTelPrometheus(t *testing.T) {
	providers, err := InitializeOTel(&OTelConfig{
		ServiceName:    ServiceName,
		ServiceVersion: "test",
		Environment:    "test",
		TraceExporter:  "none",
		MetricExporter: "prometheus",
		SampleRatio:    1,
	}, discardLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	assert.Nil(t, providers.TracerProvider)
	assert.NotNil(t, providers.Tracer)
	require.NotNil(t, providers.MeterProvider)
	require.NotNil(t, providers.PrometheusHTTP)

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)

	ctx := context.Background()
	RecordReportMetrics(ctx, metrics, 25*time.Millisecond, 5, nil)
	RecordReportMetrics(ctx, metrics, time.Millisecond, 0, errors.New("boom"))
	RecordHTTPRequest(ctx, metrics, http.MethodPost, "/api/v1/reports", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "sales_reports_generated")
	assert.Contains(t, body, "sales_report_failures")
	assert.Contains(t, body, "http_requests")
	assert.Contains(t, body, "go_goroutines")
}

func TestInitializeOTelStdoutTracing(t *testing.T) {
	providers, err := InitializeOTel(&OTelConfig{
		ServiceName:    ServiceName,
		ServiceVersion: "test",
		TraceExporter:  "stdout",
		MetricExporter: "none",
		SampleRatio:    1,
	}, discardLogger())
	require.NoError(t, err)

	require.NotNil(t, providers.TracerProvider)
	assert.Nil(t, providers.MeterProvider)
	assert.Nil(t, providers.PrometheusHTTP)

	ctx, span := providers.Tracer.Start(context.Background(), "test-operation")
	assert.Len(t, TraceIDFromContext(ctx), 32)
	RecordError(ctx, errors.New("failed"))
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestInitializeOTelRejectsUnknownExporters(t *testing.T) {
	_, err := InitializeOTel(&OTelConfig{TraceExporter: "jaeger"}, discardLogger())
	assert.Error(t, err)

	_, err = InitializeOTel(&OTelConfig{TraceExporter: "none", MetricExporter: "statsd"}, discardLogger())
	assert.Error(t, err)
}

func TestNilMetricsAreIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordReportMetrics(context.Background(), nil, time.Second, 1, nil)
		RecordHTTPRequest(context.Background(), nil, "GET", "/", 200, time.Second)
	})

	metrics, err := CreateBusinessMetrics(nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		RecordReportMetrics(context.Background(), metrics, time.Second, 1, nil)
	})
}

func TestTraceIDFromContextWithoutSpan(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
	assert.NotPanics(t, func() { RecordError(context.Background(), errors.New("x")) })
}
