// Package extract turns free-text watch listings into structured records.
//
// A line is normalized, then folded through a fixed sequence of stages. Each
// stage reads the working text, records what it recognized and removes the
// matched spans, so later stages only see what earlier ones left behind. What
// remains is the listing's reference code.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	domain "github.com/donaldgifford/watch-price-tracker/pkg/types"
)

// Stage names in execution order.
const (
	StageCurrency      = "currency"
	StageYear          = "year"
	StagePrice         = "price"
	StageCurrencyStrip = "currency_strip"
	StageCondition     = "condition"
	StageCompleteness  = "completeness"
	StageColor         = "color"
	StageBracelet      = "bracelet"
	StageBrand         = "brand"
)

var tracer trace.Tracer = otel.Tracer("github.com/donaldgifford/watch-price-tracker/pkg/extract")

// Accumulator is the per-row state threaded through the stages.
type Accumulator struct {
	// Source is the normalized line and never changes.
	Source string
	// Text is what is left for the next stage.
	Text   string
	Record domain.FieldRecord
}

// Stage is one pure step of the fold.
type Stage struct {
	Name  string
	Apply func(Accumulator) Accumulator
}

// Catalog attributes reference tokens to brands.
type Catalog interface {
	Brand(token string) (string, bool)
}

// Batch is the result of running the pipeline over many lines.
type Batch struct {
	Records  []domain.FieldRecord
	Read     int
	Rejected map[domain.RejectReason]int
}

// RejectedTotal sums every rejection count.
func (b *Batch) RejectedTotal() int {
	n := 0
	for _, c := range b.Rejected {
		n += c
	}
	return n
}

// Pipeline is the compiled extraction pipeline. It is immutable after New
// and safe for concurrent use.
type Pipeline struct {
	normalizer *Normalizer
	validator  *Validator
	stages     []Stage
	log        *slog.Logger

	workers   int
	catalog   Catalog
	normCfg   NormalizerConfig
	valCfg    ValidatorConfig
	floor     float64
	threshold float64
}

// Option configures the Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the number of goroutines used by Run.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// WithCatalog enables the brand stage.
func WithCatalog(c Catalog) Option {
	return func(p *Pipeline) {
		p.catalog = c
	}
}

// WithNormalizer sets the row shape thresholds.
func WithNormalizer(cfg NormalizerConfig) Option {
	return func(p *Pipeline) {
		p.normCfg = cfg
	}
}

// WithValidator sets the record checks.
func WithValidator(cfg ValidatorConfig) Option {
	return func(p *Pipeline) {
		p.valCfg = cfg
	}
}

// WithPriceBand sets the low-value band that triggers price recovery.
func WithPriceBand(floor, threshold float64) Option {
	return func(p *Pipeline) {
		p.floor = floor
		p.threshold = threshold
	}
}

// New compiles the vocabulary into a Pipeline. Any error here is a
// configuration error and should stop the process.
func New(vocab *Vocabulary, opts ...Option) (*Pipeline, error) {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	p := &Pipeline{
		log:     slog.Default(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		p.workers = 1
	}

	p.normalizer = NewNormalizer(p.normCfg)

	validator, err := NewValidator(p.valCfg, vocab.StopWords)
	if err != nil {
		return nil, fmt.Errorf("compiling stop words: %w", err)
	}
	p.validator = validator

	stages, err := p.buildStages(vocab)
	if err != nil {
		return nil, err
	}
	p.stages = stages

	return p, nil
}

func (p *Pipeline) buildStages(vocab *Vocabulary) ([]Stage, error) {
	currency, err := newCurrencyMatcher(vocab.Currencies)
	if err != nil {
		return nil, fmt.Errorf("compiling currencies: %w", err)
	}

	resolver, err := NewPriceResolver(currency.tokenList(), p.floor, p.threshold)
	if err != nil {
		return nil, fmt.Errorf("compiling price patterns: %w", err)
	}

	matchers := make(map[string]*keywordMatcher, 4)
	for name, table := range map[string]KeywordTable{
		StageCondition:    vocab.Conditions,
		StageCompleteness: vocab.Completeness,
		StageColor:        vocab.Colors,
		StageBracelet:     vocab.Bracelets,
	} {
		m, err := newKeywordMatcher(name, table)
		if err != nil {
			return nil, fmt.Errorf("compiling %s keywords: %w", name, err)
		}
		matchers[name] = m
	}

	stages := []Stage{
		{Name: StageCurrency, Apply: currencyStage(currency)},
		{Name: StageYear, Apply: yearStage(currency.tokenSet())},
		{Name: StagePrice, Apply: priceStage(resolver)},
		{Name: StageCurrencyStrip, Apply: currencyStripStage(currency)},
		{Name: StageCondition, Apply: conditionStage(matchers[StageCondition])},
		{Name: StageCompleteness, Apply: completenessStage(matchers[StageCompleteness])},
		{Name: StageColor, Apply: colorStage(matchers[StageColor])},
		{Name: StageBracelet, Apply: braceletStage(matchers[StageBracelet])},
	}
	if p.catalog != nil {
		stages = append(stages, Stage{Name: StageBrand, Apply: brandStage(p.catalog)})
	}

	return stages, nil
}

// StageNames returns the stage order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Parse normalizes line and folds it through every stage. The reference is
// cleaned but not validated. A rejected line returns an empty record.
func (p *Pipeline) Parse(line string) (domain.FieldRecord, domain.RejectReason) {
	text, reason := p.normalizer.Normalize(line)
	if reason != domain.RejectNone {
		return domain.FieldRecord{}, reason
	}

	acc := Accumulator{Source: text, Text: text}
	for _, s := range p.stages {
		acc = s.Apply(acc)
	}

	rec := acc.Record
	rec.Text = acc.Source
	rec.Reference = p.validator.Clean(acc.Text)
	return rec, domain.RejectNone
}

// Evaluate parses line and applies the record checks. The record is
// returned even when rejected after normalization, for inspection.
func (p *Pipeline) Evaluate(line string) (rec domain.FieldRecord, reason domain.RejectReason) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("row extraction panicked", "panic", r, "line", line)
			rec, reason = domain.FieldRecord{}, domain.RejectInternal
		}
	}()

	rec, reason = p.Parse(line)
	if reason != domain.RejectNone {
		return rec, reason
	}
	return rec, p.validator.Check(&rec)
}

// Process runs the pipeline over lines and returns the accepted,
// de-duplicated records in input order.
func (p *Pipeline) Process(lines []string) []domain.FieldRecord {
	batch, err := p.Run(context.Background(), lines)
	if err != nil {
		return nil
	}
	return batch.Records
}

type rowResult struct {
	rec    domain.FieldRecord
	reason domain.RejectReason
}

// Run evaluates lines in parallel, then removes duplicates in a single pass.
// Only context cancellation returns an error; the partial batch is discarded.
func (p *Pipeline) Run(ctx context.Context, lines []string) (*Batch, error) {
	ctx, span := tracer.Start(ctx, "extract.Run",
		trace.WithAttributes(attribute.Int("rows", len(lines))))
	defer span.End()

	start := time.Now()
	results := make([]rowResult, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	workers := min(p.workers, max(len(lines), 1))
	for w := range workers {
		g.Go(func() error {
			for i := w; i < len(lines); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				rec, reason := p.Evaluate(lines[i])
				results[i] = rowResult{rec: rec, reason: reason}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("processing batch: %w", err)
	}

	batch := dedupe(results)
	batch.Read = len(lines)

	span.SetAttributes(
		attribute.Int("accepted", len(batch.Records)),
		attribute.Int("rejected", batch.RejectedTotal()),
	)
	p.log.Debug("batch processed",
		"rows", len(lines),
		"accepted", len(batch.Records),
		"rejected", batch.RejectedTotal(),
		"duration", time.Since(start),
	)

	return batch, nil
}

// dedupe keeps the first occurrence of each record and counts rejections.
func dedupe(results []rowResult) *Batch {
	batch := &Batch{Rejected: make(map[domain.RejectReason]int)}
	seen := make(map[string]struct{}, len(results))

	for _, r := range results {
		if r.reason != domain.RejectNone {
			batch.Rejected[r.reason]++
			continue
		}

		key := recordKey(r.rec)
		if _, dup := seen[key]; dup {
			batch.Rejected[domain.RejectDuplicate]++
			continue
		}
		seen[key] = struct{}{}
		batch.Records = append(batch.Records, r.rec)
	}

	return batch
}

// recordKey identifies a record by its extracted fields. The source text is
// excluded so differently spelled lines with identical fields collapse.
func recordKey(rec domain.FieldRecord) string {
	rec.Text = ""
	b, err := json.Marshal(rec)
	if err != nil {
		return rec.Reference
	}
	return string(b)
}

func currencyStage(m *currencyMatcher) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		if code, ok := m.detect(acc.Text); ok {
			acc.Record.Currency = code
		}
		return acc
	}
}

func currencyStripStage(m *currencyMatcher) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		if acc.Record.Currency != "" {
			acc.Text = m.strip(acc.Text, acc.Record.Currency)
		}
		return acc
	}
}

func yearStage(currencies map[string]struct{}) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		if y, start, end, _, ok := matchYear(acc.Text, currencies); ok {
			acc.Record.Year = &y
			acc.Text = cutSpan(acc.Text, start, end)
		}
		return acc
	}
}

func priceStage(r *PriceResolver) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		price, text := r.Resolve(acc.Text, acc.Source)
		acc.Record.Amount = price.Amount
		acc.Record.DiscountPct = price.DiscountPct
		acc.Record.FinalAmount = price.FinalAmount
		acc.Text = text
		return acc
	}
}

func conditionStage(m *keywordMatcher) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		hits, text := m.extract(acc.Text)
		acc.Record.Conditions = tagSet(hits)
		acc.Text = text
		return acc
	}
}

func completenessStage(m *keywordMatcher) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		hits, text := m.extract(acc.Text)
		acc.Record.Completeness = firstTag(hits)
		acc.Text = text
		return acc
	}
}

func colorStage(m *keywordMatcher) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		hits, text := m.extract(acc.Text)
		acc.Record.Colors = tagSet(hits)
		acc.Text = text
		return acc
	}
}

func braceletStage(m *keywordMatcher) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		hits, text := m.extract(acc.Text)
		acc.Record.Bracelet = firstTag(hits)
		acc.Text = text
		return acc
	}
}

// brandStage attributes the first reference token the catalog knows.
func brandStage(c Catalog) func(Accumulator) Accumulator {
	return func(acc Accumulator) Accumulator {
		for _, tok := range strings.Fields(acc.Text) {
			if brand, ok := c.Brand(tok); ok {
				acc.Record.Brand = brand
				break
			}
		}
		return acc
	}
}
