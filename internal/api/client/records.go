package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// RecordsResponse wraps a paginated records response.
type RecordsResponse struct {
	Records []domain.Listing `json:"records"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// ListRecordsParams defines query parameters for record queries.
type ListRecordsParams struct {
	UploadID       string
	Brand          string
	Currency       string
	Reference      string
	Year           int
	Condition      string
	Color          string
	Completeness   string
	AsOfDate       string
	MinFinalAmount float64
	MaxFinalAmount float64
	Limit          int
	Offset         int
	OrderBy        string
}

func (p *ListRecordsParams) values() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("upload_id", p.UploadID)
	set("brand", p.Brand)
	set("currency", p.Currency)
	set("reference", p.Reference)
	set("condition", p.Condition)
	set("color", p.Color)
	set("completeness", p.Completeness)
	set("as_of_date", p.AsOfDate)
	set("order_by", p.OrderBy)
	if p.Year > 0 {
		q.Set("year", strconv.Itoa(p.Year))
	}
	if p.MinFinalAmount > 0 {
		q.Set("min_final_amount", strconv.FormatFloat(p.MinFinalAmount, 'f', -1, 64))
	}
	if p.MaxFinalAmount > 0 {
		q.Set("max_final_amount", strconv.FormatFloat(p.MaxFinalAmount, 'f', -1, 64))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	return q
}

// ListRecords returns stored records matching the given parameters.
func (c *Client) ListRecords(
	ctx context.Context,
	params *ListRecordsParams,
) (*RecordsResponse, error) {
	path := "/api/v1/records"
	if q := params.values(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp RecordsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
