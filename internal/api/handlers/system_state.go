package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ListingCounter counts stored listings.
type ListingCounter interface {
	CountListings(ctx context.Context) (int, error)
}

// StageLister reports the configured pipeline stages in order.
type StageLister interface {
	StageNames() []string
}

// SystemStateHandler handles GET /api/v1/system/state.
type SystemStateHandler struct {
	store    ListingCounter
	pipeline StageLister
}

// NewSystemStateHandler creates a SystemStateHandler.
func NewSystemStateHandler(s ListingCounter, p StageLister) *SystemStateHandler {
	return &SystemStateHandler{store: s, pipeline: p}
}

// SystemStateOutput is the response for GET /api/v1/system/state.
type SystemStateOutput struct {
	Body struct {
		ListingsTotal int      `json:"listings_total"`
		Stages        []string `json:"stages" doc:"Extraction stages in the order they run"`
	}
}

// GetSystemState returns the stored listing count and the pipeline layout.
func (h *SystemStateHandler) GetSystemState(
	ctx context.Context,
	_ *struct{},
) (*SystemStateOutput, error) {
	n, err := h.store.CountListings(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to get system state")
	}

	resp := &SystemStateOutput{}
	resp.Body.ListingsTotal = n
	resp.Body.Stages = h.pipeline.StageNames()
	return resp, nil
}

// RegisterSystemStateRoutes registers the system state route on the Huma API.
func RegisterSystemStateRoutes(api huma.API, h *SystemStateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-system-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/system/state",
		Summary:     "Get system state",
		Description: "Returns the stored listing count and the extraction stage order.",
		Tags:        []string{"system"},
	}, h.GetSystemState)
}
