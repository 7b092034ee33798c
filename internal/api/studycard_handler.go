package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/scry-studycards/internal/api/shared"
	"github.com/phrazzld/scry-studycards/internal/domain"
	"github.com/phrazzld/scry-studycards/internal/export"
	"github.com/phrazzld/scry-studycards/internal/platform/logger"
	"github.com/phrazzld/scry-studycards/internal/service"
	"golang.org/x/sync/semaphore"
)

// Upload form fields.
const (
	FileField   = "file"
	ModelField  = "model"
	FormatField = "format"

	pdfContentType = "application/pdf"

	// multipartOverhead is the allowance for multipart headers and the
	// other form fields on top of the file size limit.
	multipartOverhead = 64 << 10
)

// StudyCardHandler handles document upload requests.
type StudyCardHandler struct {
	service        service.StudyCardService
	slots          *semaphore.Weighted
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewStudyCardHandler creates a new StudyCardHandler.
// maxConcurrent bounds the number of pipeline runs in flight.
func NewStudyCardHandler(
	svc service.StudyCardService,
	maxUploadBytes int64,
	maxConcurrent int64,
	logger *slog.Logger,
) *StudyCardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StudyCardHandler")
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &StudyCardHandler{
		service:        svc,
		slots:          semaphore.NewWeighted(maxConcurrent),
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With(slog.String("component", "study_card_handler")),
	}
}

// GenerateStudyCards handles POST /api/studycards requests.
// It reads the PDF from the multipart field "file" and returns the generated
// cards as JSON, or as an XLSX workbook when format=xlsx.
func (h *StudyCardHandler) GenerateStudyCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	data, req, err := h.readUpload(w, r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("document upload received",
		slog.Int("size", len(data)),
		slog.String("model", req.Model),
		slog.String("format", req.Format))

	if err := h.slots.Acquire(r.Context(), 1); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
			"The server is busy. Please try again later.", err, shared.WithElevatedLogLevel())
		return
	}
	defer h.slots.Release(1)

	set, err := h.service.GenerateFromDocument(r.Context(), data, service.GenerateOptions{
		PreferredModel: req.Model,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	format, _ := export.ParseFormat(req.Format)
	if format == export.FormatXLSX {
		h.writeWorkbook(w, r, set)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Cards: cardsToResponse(set.Cards),
		Model: set.Model,
		RunID: set.RunID.String(),
	})
}

// readUpload applies the presentation guards: size limit, non-empty file,
// and PDF content type.
func (h *StudyCardHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, GenerateRequest, error) {
	var req GenerateRequest

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	}

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, req, fmt.Errorf("%w: %d bytes allowed", domain.ErrDocumentTooLarge, h.maxUploadBytes)
		}
		return nil, req, fmt.Errorf("%w: invalid multipart form: %v", domain.ErrValidation, err)
	}

	req.Model = strings.TrimSpace(r.FormValue(ModelField))
	req.Format = strings.TrimSpace(r.FormValue(FormatField))
	if err := shared.ValidateRequest(&req); err != nil {
		return nil, req, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	file, header, err := r.FormFile(FileField)
	if err != nil {
		return nil, req, fmt.Errorf("%w: missing form field %q", domain.ErrValidation, FileField)
	}
	defer func() { _ = file.Close() }()

	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		return nil, req, fmt.Errorf("%w: %d bytes", domain.ErrDocumentTooLarge, header.Size)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, req, fmt.Errorf("%w: read upload: %v", domain.ErrValidation, err)
	}
	data := buf.Bytes()

	if len(data) == 0 {
		return nil, req, domain.ErrEmptyDocument
	}
	if ct := http.DetectContentType(data); ct != pdfContentType {
		return nil, req, fmt.Errorf("%w: %s", domain.ErrUnsupportedDocument, ct)
	}

	return data, req, nil
}

func (h *StudyCardHandler) writeWorkbook(w http.ResponseWriter, r *http.Request, set *service.StudyCardSet) {
	data, err := export.XLSX(set.Model, set.Cards)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"The workbook could not be created.", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="studycards.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to write workbook", "error", err)
	}
}
