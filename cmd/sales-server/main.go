// Command sales-server serves the sales report HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"salesreport/internal/app"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	application, err := app.NewApplication(*configPath)
	if err != nil {
		slog.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		slog.Error("Application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
