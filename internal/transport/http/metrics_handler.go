package http

import (
	"net/http"

	apierrors "salesreport/internal/errors"
)

// MetricsHandler serves the Prometheus exposition of the service metrics
type MetricsHandler struct {
	exposition   http.Handler
	errorHandler *apierrors.ErrorHandler
}

// NewMetricsHandler wraps the exporter's HTTP handler, which may be nil when
// metrics export is disabled
func NewMetricsHandler(exposition http.Handler, errorHandler *apierrors.ErrorHandler) *MetricsHandler {
	return &MetricsHandler{
		exposition:   exposition,
		errorHandler: errorHandler,
	}
}

// GetMetrics handles GET /metrics
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	if h.exposition == nil {
		h.errorHandler.HandleError(w, r, apierrors.NotFoundError("metrics"))
		return
	}
	h.exposition.ServeHTTP(w, r)
}
