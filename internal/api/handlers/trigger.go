package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// CleanupRunner defines the interface for triggering retention cleanup.
type CleanupRunner interface {
	RunCleanup(ctx context.Context) error
}

// CleanupHandler handles manual cleanup trigger requests.
type CleanupHandler struct {
	runner CleanupRunner
}

// NewCleanupHandler creates a new CleanupHandler.
func NewCleanupHandler(r CleanupRunner) *CleanupHandler {
	return &CleanupHandler{runner: r}
}

// CleanupOutput is the response body for the cleanup endpoint.
type CleanupOutput struct {
	Body struct {
		Status string `json:"status" example:"cleanup completed" doc:"Cleanup status"`
	}
}

// Cleanup runs the retention cleanup job immediately. The run is recorded
// in the job history like a scheduled one.
func (h *CleanupHandler) Cleanup(ctx context.Context, _ *struct{}) (*CleanupOutput, error) {
	if err := h.runner.RunCleanup(ctx); err != nil {
		return nil, huma.Error500InternalServerError("cleanup failed: " + err.Error())
	}

	resp := &CleanupOutput{}
	resp.Body.Status = "cleanup completed"
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, cleanupH *CleanupHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-cleanup",
		Method:      http.MethodPost,
		Path:        "/api/v1/jobs/cleanup/run",
		Summary:     "Trigger retention cleanup",
		Description: "Deletes stored records older than the configured retention window.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, cleanupH.Cleanup)
}
