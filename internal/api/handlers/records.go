package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/watch-price-tracker/internal/store"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// RecordsProvider defines the store methods required by the records handler.
type RecordsProvider interface {
	ListListings(ctx context.Context, opts *store.ListingQuery) ([]domain.Listing, int, error)
}

// RecordsHandler handles stored listing queries.
type RecordsHandler struct {
	store RecordsProvider
}

// NewRecordsHandler creates a new RecordsHandler.
func NewRecordsHandler(s RecordsProvider) *RecordsHandler {
	return &RecordsHandler{store: s}
}

// --- Input/Output types ---

// ListRecordsInput is the input for listing records with optional filters.
type ListRecordsInput struct {
	UploadID       string  `query:"upload_id"        doc:"Filter by upload UUID"`
	Brand          string  `query:"brand"            doc:"Filter by brand (case-insensitive)"`
	Currency       string  `query:"currency"         doc:"Filter by currency"                          enum:"HKD,USD,USDT,KD,hkd,usd,usdt,kd,"`
	Reference      string  `query:"reference"        doc:"Filter by reference prefix"`
	Year           int     `query:"year"             doc:"Filter by year"                              minimum:"0"`
	Condition      string  `query:"condition"        doc:"Filter by condition tag"`
	Color          string  `query:"color"            doc:"Filter by color tag"`
	Completeness   string  `query:"completeness"     doc:"Filter by completeness"`
	AsOfDate       string  `query:"as_of_date"       doc:"Filter by as-of date (YYYY-MM-DD)"`
	MinFinalAmount float64 `query:"min_final_amount" doc:"Minimum final amount"                        minimum:"0"`
	MaxFinalAmount float64 `query:"max_final_amount" doc:"Maximum final amount"                        minimum:"0"`
	Limit          int     `query:"limit"            doc:"Number of results (default 50)"              minimum:"1" maximum:"1000"`
	Offset         int     `query:"offset"           doc:"Pagination offset"                           minimum:"0"`
	OrderBy        string  `query:"order_by"         doc:"Sort field"                                  enum:"created_at,final_amount,year,"`
}

// ListRecordsOutput is the response for listing records.
type ListRecordsOutput struct {
	Body struct {
		Records []domain.Listing `json:"records"`
		Total   int              `json:"total"`
		Limit   int              `json:"limit"`
		Offset  int              `json:"offset"`
	}
}

// --- Handlers ---

// ListRecords returns stored listings matching the filters.
func (h *RecordsHandler) ListRecords(
	ctx context.Context,
	input *ListRecordsInput,
) (*ListRecordsOutput, error) {
	q, err := input.query()
	if err != nil {
		return nil, err
	}

	records, total, err := h.store.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("records query failed: " + err.Error())
	}
	if records == nil {
		records = []domain.Listing{}
	}

	resp := &ListRecordsOutput{}
	resp.Body.Records = records
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

func (in *ListRecordsInput) query() (*store.ListingQuery, error) {
	q := &store.ListingQuery{
		Limit:   in.Limit,
		Offset:  in.Offset,
		OrderBy: in.OrderBy,
	}
	if q.Limit == 0 {
		q.Limit = 50
	}

	q.UploadID = optString(in.UploadID)
	q.Brand = optString(in.Brand)
	q.Reference = optString(in.Reference)
	q.Condition = optString(in.Condition)
	q.Color = optString(in.Color)
	q.Completeness = optString(in.Completeness)
	if in.Currency != "" {
		c := strings.ToUpper(in.Currency)
		q.Currency = &c
	}
	if in.Year != 0 {
		q.Year = &in.Year
	}
	if in.MinFinalAmount != 0 {
		q.MinFinalAmount = &in.MinFinalAmount
	}
	if in.MaxFinalAmount != 0 {
		q.MaxFinalAmount = &in.MaxFinalAmount
	}
	if q.MinFinalAmount != nil && q.MaxFinalAmount != nil && *q.MinFinalAmount > *q.MaxFinalAmount {
		return nil, huma.Error400BadRequest("min_final_amount must not exceed max_final_amount")
	}

	if in.AsOfDate != "" {
		d, err := time.Parse(time.DateOnly, in.AsOfDate)
		if err != nil {
			return nil, huma.Error400BadRequest("as_of_date must be YYYY-MM-DD")
		}
		q.AsOfDate = &d
	}

	return q, nil
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// RegisterRecordRoutes registers record endpoints with the Huma API.
func RegisterRecordRoutes(api huma.API, h *RecordsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-records",
		Method:      http.MethodGet,
		Path:        "/api/v1/records",
		Summary:     "List stored records",
		Description: "Returns stored listings filtered by brand, currency, year, tags, " +
			"as-of date and final amount range, newest first by default.",
		Tags:   []string{"records"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.ListRecords)
}
