package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// ListJobs returns the most recent run for each distinct scheduled job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns up to limit runs of one scheduled job. A limit of
// zero leaves the server default.
func (c *Client) GetJobHistory(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	path := "/api/v1/jobs/" + url.PathEscape(jobName)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// RunCleanup triggers the retention cleanup job.
func (c *Client) RunCleanup(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.post(ctx, "/api/v1/jobs/cleanup/run", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// SystemState is the response of the system state endpoint.
type SystemState struct {
	ListingsTotal int      `json:"listings_total"`
	Stages        []string `json:"stages"`
}

// GetSystemState returns the stored listing count and pipeline stage order.
func (c *Client) GetSystemState(ctx context.Context) (*SystemState, error) {
	var s SystemState
	if err := c.get(ctx, "/api/v1/system/state", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
