// Package app wires the sales report HTTP service together and manages its lifecycle.
//
// # Initialization Flow
//
//	1. Load configuration from defaults, an optional YAML file and SALES_* variables
//	2. Initialize logging and OpenTelemetry (traces, Prometheus metrics)
//	3. Resolve and create the data, reports and logs directories
//	4. Build the report and health services
//	5. Set up middleware and routes on a chi router
//	6. Start the HTTP server
//
// # Usage
//
//	application, err := app.NewApplication("")
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx)
//
// # Graceful Shutdown
//
// Run returns after SIGINT or SIGTERM once in-flight requests have completed
// (bounded by server.shutdown_timeout) and telemetry has been flushed.
//
// # Error Handling
//
// Initialization errors are returned to the caller. The package never calls
// os.Exit, leaving exit codes to main.
package app
