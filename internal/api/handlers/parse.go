package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/patrickmn/go-cache"

	"github.com/donaldgifford/watch-price-tracker/internal/metrics"
	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// LineEvaluator runs the extraction pipeline over a single line.
type LineEvaluator interface {
	Evaluate(line string) (domain.FieldRecord, domain.RejectReason)
}

// ParseHandler handles ad-hoc parse requests.
type ParseHandler struct {
	pipeline LineEvaluator
	cache    *cache.Cache
}

// NewParseHandler creates a new ParseHandler. Results are cached per line
// for ttl; a zero ttl disables the cache.
func NewParseHandler(p LineEvaluator, ttl, cleanup time.Duration) *ParseHandler {
	h := &ParseHandler{pipeline: p}
	if ttl > 0 {
		h.cache = cache.New(ttl, cleanup)
	}
	return h
}

// ParseInput is the request body for the parse endpoint.
type ParseInput struct {
	Body struct {
		Lines []string `json:"lines" minItems:"1" maxItems:"500" doc:"Listing lines to parse" example:"[\"rolex 126610ln black hkd 98000 full set\"]"`
	}
}

// ParseResult is the outcome for one line.
type ParseResult struct {
	Line     string              `json:"line"`
	Accepted bool                `json:"accepted"`
	Reason   domain.RejectReason `json:"reason,omitempty" example:"reference_digits" doc:"Why the line was rejected"`
	Record   *domain.FieldRecord `json:"record,omitempty"`
}

// ParseOutput is the response body for the parse endpoint.
type ParseOutput struct {
	Body struct {
		Results  []ParseResult `json:"results"`
		Accepted int           `json:"accepted"`
		Rejected int           `json:"rejected"`
	}
}

// Parse runs every line through the pipeline independently. Lines are not
// de-duplicated against each other.
func (h *ParseHandler) Parse(_ context.Context, input *ParseInput) (*ParseOutput, error) {
	resp := &ParseOutput{}
	resp.Body.Results = make([]ParseResult, 0, len(input.Body.Lines))

	for _, line := range input.Body.Lines {
		res := h.evaluate(line)
		if res.Accepted {
			resp.Body.Accepted++
		} else {
			resp.Body.Rejected++
		}
		resp.Body.Results = append(resp.Body.Results, res)
	}

	return resp, nil
}

func (h *ParseHandler) evaluate(line string) ParseResult {
	if h.cache != nil {
		if v, ok := h.cache.Get(line); ok {
			metrics.ParseCacheHitsTotal.Inc()
			return v.(ParseResult)
		}
		metrics.ParseCacheMissesTotal.Inc()
	}

	rec, reason := h.pipeline.Evaluate(line)
	res := ParseResult{Line: line, Accepted: reason == domain.RejectNone, Reason: reason}
	if rec.Reference != "" || rec.Text != "" {
		res.Record = &rec
	}

	if h.cache != nil {
		h.cache.SetDefault(line, res)
	}
	return res
}

// RegisterParseRoutes registers parse endpoints with the Huma API.
func RegisterParseRoutes(api huma.API, h *ParseHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "parse-lines",
		Method:      http.MethodPost,
		Path:        "/api/v1/parse",
		Summary:     "Parse listing lines",
		Description: "Runs each line through the extraction pipeline and returns the " +
			"structured record, or the reason the line was rejected. Nothing is stored.",
		Tags: []string{"parse"},
	}, h.Parse)
}
