// Package services implements the business logic layer between the transports
// (HTTP handlers, CLI) and the report pipeline.
//
// ReportService wraps the sales analyzer with the configured policies, a
// tracing span and metrics per run, and assembles the report envelope with
// its id, timestamp and totals. HealthService answers liveness, readiness and
// version probes.
//
// Services receive their dependencies through constructors and log with an
// injected *slog.Logger.
package services
