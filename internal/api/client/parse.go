package client

import (
	"context"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// ParseResult is the outcome for one parsed line.
type ParseResult struct {
	Line     string              `json:"line"`
	Accepted bool                `json:"accepted"`
	Reason   domain.RejectReason `json:"reason,omitempty"`
	Record   *domain.FieldRecord `json:"record,omitempty"`
}

// ParseResponse is the response of the parse endpoint.
type ParseResponse struct {
	Results  []ParseResult `json:"results"`
	Accepted int           `json:"accepted"`
	Rejected int           `json:"rejected"`
}

// Parse runs lines through the server's extraction pipeline without storing
// anything.
func (c *Client) Parse(ctx context.Context, lines []string) (*ParseResponse, error) {
	body := map[string][]string{"lines": lines}

	var resp ParseResponse
	if err := c.post(ctx, "/api/v1/parse", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
