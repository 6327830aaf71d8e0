package client

import (
	"context"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// ListBrands returns every brand code.
func (c *Client) ListBrands(ctx context.Context) ([]domain.BrandCode, error) {
	var codes []domain.BrandCode
	if err := c.get(ctx, "/api/v1/brands", &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// UpsertBrands inserts or replaces brand codes and returns how many were
// written.
func (c *Client) UpsertBrands(ctx context.Context, codes []domain.BrandCode) (int, error) {
	body := map[string][]domain.BrandCode{"codes": codes}

	var resp struct {
		Upserted int `json:"upserted"`
	}
	if err := c.put(ctx, "/api/v1/brands", body, &resp); err != nil {
		return 0, err
	}
	return resp.Upserted, nil
}
