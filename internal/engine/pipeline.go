package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/watch-price-tracker/internal/catalog"
	"github.com/donaldgifford/watch-price-tracker/internal/config"
	"github.com/donaldgifford/watch-price-tracker/pkg/extract"
)

// NewPipeline compiles the extraction pipeline described by cfg. cat may be
// nil, which leaves the brand stage out.
func NewPipeline(cfg *config.PipelineConfig, cat extract.Catalog, log *slog.Logger) (*extract.Pipeline, error) {
	vocab := extract.DefaultVocabulary()
	if cfg.VocabularyFile != "" {
		v, err := extract.LoadVocabulary(cfg.VocabularyFile)
		if err != nil {
			return nil, fmt.Errorf("loading vocabulary: %w", err)
		}
		vocab = v
	}

	opts := []extract.Option{
		extract.WithLogger(log),
		extract.WithNormalizer(extract.NormalizerConfig{
			MinLength: cfg.MinLength,
			MinTokens: cfg.MinTokens,
		}),
		extract.WithValidator(extract.ValidatorConfig{
			MinReferenceDigits: cfg.MinReferenceDigits,
			MaxReferenceLength: cfg.MaxReferenceLength,
			StopWords:          cfg.StopWords,
			RequirePrice:       cfg.RequirePrice,
			RequireBrand:       cfg.RequireBrand,
		}),
		extract.WithPriceBand(cfg.PriceFloor, cfg.PriceThreshold),
	}
	if cfg.Workers > 0 {
		opts = append(opts, extract.WithWorkers(cfg.Workers))
	}
	if cat != nil {
		opts = append(opts, extract.WithCatalog(cat))
	}

	p, err := extract.New(vocab, opts...)
	if err != nil {
		return nil, fmt.Errorf("building pipeline: %w", err)
	}
	return p, nil
}

// LoadCatalog returns the brand catalog selected by cfg, or nil when the
// source is "none". lister is only used for the "database" source.
func LoadCatalog(
	ctx context.Context,
	cfg *config.CatalogConfig,
	lister catalog.BrandCodeLister,
	log *slog.Logger,
) (extract.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)

	switch cfg.Source {
	case "file":
		c, err = catalog.LoadFile(cfg.File)
	case "database":
		if lister == nil {
			return nil, fmt.Errorf("catalog source database: %w", ErrNoStore)
		}
		c, err = catalog.LoadStore(ctx, lister)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading brand catalog: %w", err)
	}

	log.Info("brand catalog loaded", "source", cfg.Source, "codes", c.Len())
	return c, nil
}
