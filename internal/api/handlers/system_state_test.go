package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/watch-price-tracker/internal/api/handlers"
	"github.com/donaldgifford/watch-price-tracker/pkg/extract"
)

type mockListingCounter struct {
	count int
	err   error
}

func (m *mockListingCounter) CountListings(_ context.Context) (int, error) {
	return m.count, m.err
}

func newStageLister(t *testing.T) handlers.StageLister {
	t.Helper()
	p, err := extract.New(nil)
	require.NoError(t, err)
	return p
}

func TestGetSystemState_Success(t *testing.T) {
	t.Parallel()

	h := handlers.NewSystemStateHandler(&mockListingCounter{count: 1000}, newStageLister(t))

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, h)

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"listings_total":1000`)
	assert.Contains(t, resp.Body.String(), `"price"`)
}

func TestGetSystemState_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewSystemStateHandler(&mockListingCounter{err: errors.New("db error")}, newStageLister(t))

	_, api := humatest.New(t)
	handlers.RegisterSystemStateRoutes(api, h)

	resp := api.Get("/api/v1/system/state")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to get system state")
}
