package http

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "salesreport/internal/errors"
	"salesreport/internal/middleware"
	"salesreport/pkg/contracts/domain"
)

// Accepted upload media types
const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportGenerator produces a report from a validated dataset
type ReportGenerator interface {
	Generate(ctx context.Context, data *domain.Dataset) (*domain.Report, error)
}

// DatasetDecoder decodes and validates uploaded datasets
type DatasetDecoder interface {
	LoadJSON(r io.Reader) (*domain.Dataset, error)
	ReadWorkbook(r io.Reader) (*domain.Dataset, error)
	Validate(data *domain.Dataset) error
}

// ReportHandler handles report generation requests
type ReportHandler struct {
	service      ReportGenerator
	decoder      DatasetDecoder
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxBodyBytes int64
}

// NewReportHandler creates a report handler. maxBodyBytes <= 0 disables the body cap.
func NewReportHandler(service ReportGenerator, decoder DatasetDecoder, maxBodyBytes int64, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:      service,
		decoder:      decoder,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
		maxBodyBytes: maxBodyBytes,
	}
}

// Routes returns the report routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.BodyLimit(h.maxBodyBytes))
	r.Use(middleware.ContentTypeValidator(h.errorHandler, ContentTypeJSON, ContentTypeXLSX))
	r.Post("/", h.GenerateReport)
	return r
}

// GenerateReport handles POST /api/v1/reports
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.decode(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	if err := h.decoder.Validate(data); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	report, err := h.service.Generate(ctx, data)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "report served",
		slog.String("report_id", report.ID),
		slog.Int("sellers", len(report.Sellers)))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, report)
}

func (h *ReportHandler) decode(r *http.Request) (*domain.Dataset, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, apierrors.ErrValidation("body", "request body is required")
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == ContentTypeXLSX {
		return h.decoder.ReadWorkbook(r.Body)
	}
	return h.decoder.LoadJSON(r.Body)
}
