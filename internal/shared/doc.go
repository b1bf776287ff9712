// Package shared holds helpers used across packages that belong to no
// single domain layer. Test helpers live in the testutil subpackage:
//
//	logger, logs := testutil.NewTestLogger(t)
//	svc, _ := services.NewReportService(cfg, logger)
//	svc.Generate(ctx, testutil.FixtureDataset())
//	testutil.AssertLogContains(t, logs, slog.LevelInfo, "report generated")
package shared
