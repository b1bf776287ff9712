// Command sales-report builds a seller performance report from a dataset file
// (.json or .xlsx), exports it and prints a ranked summary. Given a directory,
// it reports on the most recently modified dataset inside it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"salesreport/internal/config"
	"salesreport/internal/exporter"
	"salesreport/internal/files"
	"salesreport/internal/infrastructure"
	"salesreport/internal/services"
	"salesreport/internal/validation"
	"salesreport/pkg/contracts"
	"salesreport/pkg/contracts/domain"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	dataPath   string
	outDir     string
	formats    string
	workers    int
	configPath string
	quiet      bool
	version    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("sales-report", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.dataPath, "data", "", "dataset file (.json or .xlsx) or a directory holding them, required")
	fs.StringVar(&opts.outDir, "out", "", "output directory (defaults to the configured reports directory)")
	fs.StringVar(&opts.formats, "format", "", "comma separated export formats: csv, json, xlsx (defaults to config)")
	fs.IntVar(&opts.workers, "workers", -1, "parallel aggregation workers (0 or 1 runs sequentially, defaults to config)")
	fs.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	fs.BoolVar(&opts.quiet, "quiet", false, "only log errors and skip the summary table")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.dataPath == "" && !opts.version {
		fs.Usage()
		return nil, errors.New("-data is required")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	if opts.version {
		fmt.Fprintln(stdout, contracts.GetVersionString())
		return exitOK
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	if opts.workers >= 0 {
		cfg.Report.Workers = opts.workers
	}

	formats, err := resolveFormats(cfg, opts.formats)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	logCfg := cfg.Logging
	if opts.quiet {
		logCfg.Level = "error"
	}
	logger, err := infrastructure.NewLogger(logCfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	defer infrastructure.CloseLogFile()
	slog.SetDefault(logger)

	ctx = infrastructure.EnsureTraceID(ctx)

	outDir := opts.outDir
	if outDir == "" {
		paths, err := config.ResolvePaths(cfg.Paths)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to resolve paths", slog.String("error", err.Error()))
			return exitError
		}
		outDir = paths.ReportsDir
	}

	dataPath, err := files.NewDiscovery("").ResolveDataset(opts.dataPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	if dataPath != opts.dataPath {
		logger.InfoContext(ctx, "Using latest dataset in directory",
			slog.String("directory", opts.dataPath),
			slog.String("data", dataPath))
	}

	fv := validation.NewFileValidator(logger)
	if err := fv.ValidateDatasetFile(dataPath); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	if err := fv.ValidateOutputDirectory(outDir); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}

	svc, err := services.NewReportService(cfg.Report, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Invalid report configuration", slog.String("error", err.Error()))
		return exitError
	}

	report, err := svc.GenerateFromFile(ctx, dataPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate report",
			slog.String("data", dataPath),
			slog.String("error", err.Error()))
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}

	base := "sales_report_" + report.GeneratedAt.Format("20060102_150405")
	written, err := exporter.Export(ctx, logger, outDir, base, report, formats)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to export report",
			slog.String("out", outDir),
			slog.String("error", err.Error()))
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}

	if !opts.quiet {
		printSummary(stdout, report)
		fmt.Fprintln(stdout)
		for _, path := range written {
			fmt.Fprintf(stdout, "wrote %s\n", path)
		}
	}

	return exitOK
}

// resolveFormats prefers the -format flag over the configured defaults
func resolveFormats(cfg *config.Config, flagValue string) ([]domain.ReportFormat, error) {
	var (
		formats []domain.ReportFormat
		err     error
	)
	if flagValue != "" {
		formats, err = config.ParseFormats(strings.Split(flagValue, ","))
	} else {
		formats, err = cfg.ExportFormats()
	}
	if err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		return nil, errors.New("at least one export format is required")
	}
	return formats, nil
}
