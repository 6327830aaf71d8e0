package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// BrandCodeStore defines the store methods required by the brands handler.
type BrandCodeStore interface {
	ListBrandCodes(ctx context.Context) ([]domain.BrandCode, error)
	UpsertBrandCodes(ctx context.Context, codes []domain.BrandCode) (int, error)
}

// BrandsHandler handles brand catalog reads and writes. Changes take effect
// in the extraction pipeline on the next restart.
type BrandsHandler struct {
	store BrandCodeStore
}

// NewBrandsHandler creates a new BrandsHandler.
func NewBrandsHandler(s BrandCodeStore) *BrandsHandler {
	return &BrandsHandler{store: s}
}

// ListBrandsOutput is the response for listing brand codes.
type ListBrandsOutput struct {
	Body []domain.BrandCode
}

// UpsertBrandsInput is the request body for upserting brand codes.
type UpsertBrandsInput struct {
	Body struct {
		Codes []domain.BrandCode `json:"codes" minItems:"1" maxItems:"10000"`
	}
}

// UpsertBrandsOutput is the response for upserting brand codes.
type UpsertBrandsOutput struct {
	Body struct {
		Upserted int `json:"upserted"`
	}
}

// ListBrands returns every brand code.
func (h *BrandsHandler) ListBrands(ctx context.Context, _ *struct{}) (*ListBrandsOutput, error) {
	codes, err := h.store.ListBrandCodes(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing brand codes failed: " + err.Error())
	}
	if codes == nil {
		codes = []domain.BrandCode{}
	}
	return &ListBrandsOutput{Body: codes}, nil
}

// UpsertBrands inserts or replaces brand codes.
func (h *BrandsHandler) UpsertBrands(
	ctx context.Context,
	input *UpsertBrandsInput,
) (*UpsertBrandsOutput, error) {
	for i, c := range input.Body.Codes {
		if strings.TrimSpace(c.RefCode) == "" || strings.TrimSpace(c.Brand) == "" {
			return nil, huma.Error400BadRequest("codes must have a ref_code and a brand", &huma.ErrorDetail{
				Location: fmt.Sprintf("body.codes[%d]", i),
				Value:    c,
			})
		}
	}

	n, err := h.store.UpsertBrandCodes(ctx, input.Body.Codes)
	if err != nil {
		return nil, huma.Error500InternalServerError("upserting brand codes failed: " + err.Error())
	}

	resp := &UpsertBrandsOutput{}
	resp.Body.Upserted = n
	return resp, nil
}

// RegisterBrandRoutes registers brand catalog endpoints with the Huma API.
func RegisterBrandRoutes(api huma.API, h *BrandsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-brands",
		Method:      http.MethodGet,
		Path:        "/api/v1/brands",
		Summary:     "List brand codes",
		Description: "Returns the reference code to brand mappings used by the brand stage.",
		Tags:        []string{"brands"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListBrands)

	huma.Register(api, huma.Operation{
		OperationID: "upsert-brands",
		Method:      http.MethodPut,
		Path:        "/api/v1/brands",
		Summary:     "Upsert brand codes",
		Description: "Inserts or replaces brand codes. Reference codes are stored lower-cased.",
		Tags:        []string{"brands"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.UpsertBrands)
}
