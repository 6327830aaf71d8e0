package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// RowError reports a record saved without its amounts.
type RowError struct {
	Row       int    `json:"row"`
	Reference string `json:"reference"`
	Price     string `json:"price"`
	Error     string `json:"error"`
}

// UploadResponse is the response of the upload endpoint.
type UploadResponse struct {
	Status       string                      `json:"status"`
	UploadID     string                      `json:"upload_id"`
	RowsRead     int                         `json:"rows_read"`
	RowsSaved    int                         `json:"rows_saved"`
	RowsRejected int                         `json:"rows_rejected"`
	Rejected     map[domain.RejectReason]int `json:"rejected"`
	Errors       []RowError                  `json:"errors"`
}

// Upload sends a listings file. asOfDate is YYYY-MM-DD; empty means today
// on the server.
func (c *Client) Upload(
	ctx context.Context,
	filename string,
	r io.Reader,
	asOfDate string,
) (*UploadResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, fmt.Errorf("copying file: %w", err)
	}
	if asOfDate != "" {
		if err := w.WriteField("as_of_date", asOfDate); err != nil {
			return nil, fmt.Errorf("writing as_of_date: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	var resp UploadResponse
	if err := c.send(ctx, http.MethodPost, "/api/v1/uploads", &buf, w.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUploads returns the upload log, newest first. A zero limit uses the
// server default.
func (c *Client) ListUploads(ctx context.Context, limit int) ([]domain.Upload, error) {
	path := "/api/v1/uploads"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var uploads []domain.Upload
	if err := c.get(ctx, path, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}

// GetUpload returns a single upload log entry.
func (c *Client) GetUpload(ctx context.Context, id string) (*domain.Upload, error) {
	var u domain.Upload
	if err := c.get(ctx, fmt.Sprintf("/api/v1/uploads/%s", url.PathEscape(id)), &u); err != nil {
		return nil, err
	}
	return &u, nil
}
