// Package config provides centralized configuration management for the sales report
// tools. It loads configuration from multiple sources, validates it, and exposes a
// type-safe API for the rest of the application.
//
// # Configuration Sources
//
// Configuration is resolved in the following order, later sources winning:
//
//	1. Default values (Default)
//	2. YAML configuration file (config.yaml, configs/config.yaml)
//	3. Environment variables with the SALES_ prefix
//
// # Environment Variables
//
//	SALES_SERVER_PORT=8080
//	SALES_LOGGING_LEVEL=debug
//	SALES_PATHS_REPORTS_DIR=/var/lib/sales/reports
//	SALES_REPORT_WORKERS=4
//	SALES_REPORT_FORMATS=csv,xlsx
//	SALES_REPORT_BONUS_FIRST=15
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := config.ResolvePaths(cfg.Paths)
package config
