// Package handlers exposes the extraction pipeline and its stored results over
// HTTP. Operations under /api/v1 are registered with huma: parse, uploads,
// records, brands, jobs and system state. The liveness and readiness probes
// are plain echo handlers so they stay outside the OpenAPI document.
package handlers

// StatusResponse is the liveness body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadinessResponse reports each dependency checked by /readyz.
type ReadinessResponse struct {
	Status   string `json:"status" example:"ready"`
	Database string `json:"database" example:"ok"`
}
