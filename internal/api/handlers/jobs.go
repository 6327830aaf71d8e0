package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// JobRunLister reads the job_runs log written by the retention scheduler.
type JobRunLister interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler serves the retention job history.
type JobsHandler struct {
	runs JobRunLister
}

// NewJobsHandler returns a JobsHandler reading from runs.
func NewJobsHandler(runs JobRunLister) *JobsHandler {
	return &JobsHandler{runs: runs}
}

// JobRunsOutput carries a list of job runs, newest first.
type JobRunsOutput struct {
	Body []domain.JobRun
}

// GetJobHistoryInput selects a job and how many of its runs to return.
type GetJobHistoryInput struct {
	JobName string `path:"job_name" enum:"cleanup" doc:"Scheduled job name"`
	Limit   int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum runs to return"`
}

// ListJobs returns the latest run of every job.
func (h *JobsHandler) ListJobs(ctx context.Context, _ *struct{}) (*JobRunsOutput, error) {
	runs, err := h.runs.ListLatestJobRuns(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing jobs failed: " + err.Error())
	}
	return &JobRunsOutput{Body: nonNilRuns(runs)}, nil
}

// GetJobHistory returns up to Limit runs of one job.
func (h *JobsHandler) GetJobHistory(ctx context.Context, input *GetJobHistoryInput) (*JobRunsOutput, error) {
	runs, err := h.runs.ListJobRuns(ctx, input.JobName, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed: " + err.Error())
	}
	return &JobRunsOutput{Body: nonNilRuns(runs)}, nil
}

// nonNilRuns keeps empty results encoding as [] rather than null.
func nonNilRuns(runs []domain.JobRun) []domain.JobRun {
	if runs == nil {
		return []domain.JobRun{}
	}
	return runs
}

// RegisterJobRoutes registers the job history endpoints.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-jobs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs",
		Summary:     "Latest job runs",
		Description: "Returns the most recent run of each scheduled job, with rows deleted and any error.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobs)

	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Job run history",
		Description: "Returns past runs of one job, newest first.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.GetJobHistory)
}
