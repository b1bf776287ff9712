// Package http implements the HTTP request handlers for the sales report service.
// Handlers are a thin layer between HTTP transport and the report service: they
// decode requests, delegate, and render responses.
//
// # Request Flow
//
//	HTTP Request → Chi Router → Middleware → Handler → ReportService → sales.Analyzer
//	                                              ↓
//	HTTP Response ← Handler ← domain.Report ←────┘
//
// # Endpoints
//
//	POST /api/v1/reports      dataset (JSON or XLSX workbook) → report
//	GET  /api/health          overall health
//	GET  /api/health/ready    readiness, 503 when a component is not ready
//	GET  /api/health/live     liveness with runtime stats
//	GET  /api/version         build information
//	GET  /metrics             Prometheus exposition
//
// # Error Handling
//
// All errors are rendered as RFC 7807 Problem Details by the shared
// errors.ErrorHandler, for example:
//
//	{
//	    "type": "/errors/sales/unknown-product",
//	    "title": "Unknown Product",
//	    "status": 422,
//	    "detail": "purchase record 3 item 1 references unknown product SKU_404",
//	    "instance": "/api/v1/reports",
//	    "details": {"sku": "SKU_404", "seller_id": "seller_2", "record_index": 3, "item_index": 1}
//	}
//
// # Testing
//
// Handlers are tested with httptest against a real ReportService built on
// the JSON fixtures under internal/dataset/testdata.
package http
