package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/watch-price-tracker/internal/engine"
	"github.com/donaldgifford/watch-price-tracker/internal/loader"
	"github.com/donaldgifford/watch-price-tracker/internal/store"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// Upload response statuses.
const (
	UploadStatusSuccess             = "success"
	UploadStatusCompletedWithErrors = "completed_with_errors"
)

const defaultUploadListLimit = 20

// Ingester defines the interface for ingesting an uploaded file.
type Ingester interface {
	Ingest(ctx context.Context, req engine.IngestRequest) (*engine.IngestResult, error)
}

// UploadsProvider defines the store methods required for the upload log.
type UploadsProvider interface {
	GetUpload(ctx context.Context, id string) (*domain.Upload, error)
	ListUploads(ctx context.Context, limit int) ([]domain.Upload, error)
}

// UploadsHandler handles file uploads and the upload log.
type UploadsHandler struct {
	ingester Ingester
	store    UploadsProvider
	maxBytes int64
	now      func() time.Time
}

// NewUploadsHandler creates a new UploadsHandler. maxBytes caps the request
// body; zero leaves the framework default.
func NewUploadsHandler(ing Ingester, s UploadsProvider, maxBytes int64) *UploadsHandler {
	return &UploadsHandler{
		ingester: ing,
		store:    s,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// --- Input/Output types ---

// UploadForm is the multipart form of the upload endpoint.
type UploadForm struct {
	File huma.FormFile `form:"file" required:"true" doc:"CSV, XLSX or plain text file, one listing per row"`
}

// CreateUploadInput is the multipart request for the upload endpoint. The
// optional as_of_date form value is read from the raw form.
type CreateUploadInput struct {
	RawBody huma.MultipartFormFiles[UploadForm]
}

// CreateUploadOutput is the response for the upload endpoint.
type CreateUploadOutput struct {
	Body struct {
		Status       string                      `json:"status"        example:"success" enum:"success,completed_with_errors"`
		UploadID     string                      `json:"upload_id"`
		RowsRead     int                         `json:"rows_read"`
		RowsSaved    int                         `json:"rows_saved"`
		RowsRejected int                         `json:"rows_rejected"`
		Rejected     map[domain.RejectReason]int `json:"rejected"      doc:"Rejected row counts by reason"`
		Errors       []engine.RowError           `json:"errors"        doc:"Rows saved without their amounts"`
	}
}

// GetUploadInput is the input for getting a single upload.
type GetUploadInput struct {
	ID string `path:"id" doc:"Upload UUID"`
}

// GetUploadOutput is the response for getting a single upload.
type GetUploadOutput struct {
	Body domain.Upload
}

// ListUploadsInput is the input for listing uploads.
type ListUploadsInput struct {
	Limit int `query:"limit" doc:"Number of results (default 20)" minimum:"1" maximum:"500"`
}

// ListUploadsOutput is the response for listing uploads.
type ListUploadsOutput struct {
	Body []domain.Upload
}

// --- Handlers ---

// CreateUpload ingests an uploaded file and reports the row counts.
func (h *UploadsHandler) CreateUpload(
	ctx context.Context,
	input *CreateUploadInput,
) (*CreateUploadOutput, error) {
	form := input.RawBody.Data()
	if form == nil || !form.File.IsSet {
		return nil, huma.Error400BadRequest("file is required")
	}

	var asOfRaw string
	if input.RawBody.Form != nil {
		if v := input.RawBody.Form.Value["as_of_date"]; len(v) > 0 {
			asOfRaw = v[0]
		}
	}
	asOf, err := engine.ParseAsOfDate(asOfRaw, h.now())
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	res, err := h.ingester.Ingest(ctx, engine.IngestRequest{
		Filename: SanitizeFilename(form.File.Filename),
		Body:     form.File,
		AsOfDate: asOf,
	})
	if err != nil {
		if errors.Is(err, loader.ErrUnsupportedFormat) {
			return nil, huma.NewError(http.StatusUnsupportedMediaType, err.Error())
		}
		return nil, huma.Error500InternalServerError("upload failed: " + err.Error())
	}

	resp := &CreateUploadOutput{}
	resp.Body.Status = UploadStatusSuccess
	if len(res.Errors) > 0 {
		resp.Body.Status = UploadStatusCompletedWithErrors
	}
	resp.Body.UploadID = res.UploadID
	resp.Body.RowsRead = res.RowsRead
	resp.Body.RowsSaved = res.RowsSaved
	resp.Body.RowsRejected = res.RowsRejected
	resp.Body.Rejected = res.Rejected
	resp.Body.Errors = res.Errors
	if resp.Body.Errors == nil {
		resp.Body.Errors = []engine.RowError{}
	}
	return resp, nil
}

// GetUpload returns a single upload log entry.
func (h *UploadsHandler) GetUpload(
	ctx context.Context,
	input *GetUploadInput,
) (*GetUploadOutput, error) {
	u, err := h.store.GetUpload(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("upload not found")
		}
		return nil, huma.Error500InternalServerError("fetching upload failed: " + err.Error())
	}
	return &GetUploadOutput{Body: *u}, nil
}

// ListUploads returns the most recent uploads, newest first.
func (h *UploadsHandler) ListUploads(
	ctx context.Context,
	input *ListUploadsInput,
) (*ListUploadsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultUploadListLimit
	}

	uploads, err := h.store.ListUploads(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing uploads failed: " + err.Error())
	}
	if uploads == nil {
		uploads = []domain.Upload{}
	}
	return &ListUploadsOutput{Body: uploads}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename strips directories from name and replaces every
// character outside [A-Za-z0-9._-] with an underscore.
func SanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	switch base {
	case "", ".", "..", "/":
		return "upload"
	}
	return base
}

// RegisterUploadRoutes registers upload endpoints with the Huma API.
func RegisterUploadRoutes(api huma.API, h *UploadsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:  "create-upload",
		Method:       http.MethodPost,
		Path:         "/api/v1/uploads",
		Summary:      "Upload a listings file",
		MaxBodyBytes: h.maxBytes,
		Description: fmt.Sprintf("Parses a CSV, XLSX or text file and stores the accepted records. "+
			"The optional as_of_date form value (YYYY-MM-DD) defaults to today and must not be in the future. "+
			"Amounts above the ceiling are dropped and reported in errors. Uploads are limited to %d bytes.", h.maxBytes),
		Tags: []string{"uploads"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusUnsupportedMediaType,
			http.StatusInternalServerError,
		},
	}, h.CreateUpload)

	huma.Register(api, huma.Operation{
		OperationID: "list-uploads",
		Method:      http.MethodGet,
		Path:        "/api/v1/uploads",
		Summary:     "List uploads",
		Description: "Returns the upload log, newest first.",
		Tags:        []string{"uploads"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListUploads)

	huma.Register(api, huma.Operation{
		OperationID: "get-upload",
		Method:      http.MethodGet,
		Path:        "/api/v1/uploads/{id}",
		Summary:     "Get an upload by ID",
		Description: "Returns a single upload log entry.",
		Tags:        []string{"uploads"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetUpload)
}
