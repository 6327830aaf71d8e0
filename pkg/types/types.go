// Package domain defines the core business types for the watch price tracker.
package domain

import (
	"slices"
	"time"
)

// Currency is a canonical currency code recognized in listing text.
type Currency string

// Currency constants.
const (
	CurrencyHKD  Currency = "HKD"
	CurrencyUSD  Currency = "USD"
	CurrencyUSDT Currency = "USDT"
	CurrencyKD   Currency = "KD"
)

// RejectReason names why a row produced no record.
type RejectReason string

// Reject reason constants. RejectNone marks an accepted row.
const (
	RejectNone            RejectReason = ""
	RejectTooShort        RejectReason = "too_short"
	RejectDelimiter       RejectReason = "delimiter"
	RejectTooFewTokens    RejectReason = "too_few_tokens"
	RejectEmptyReference  RejectReason = "empty_reference"
	RejectReferenceDigits RejectReason = "reference_digits"
	RejectReferenceLength RejectReason = "reference_length"
	RejectNoPrice         RejectReason = "no_price"
	RejectNoBrand         RejectReason = "no_brand"
	RejectDuplicate       RejectReason = "duplicate"
	RejectInternal        RejectReason = "internal"
)

// RejectReasons lists every non-empty reason in reporting order.
var RejectReasons = []RejectReason{
	RejectTooShort,
	RejectDelimiter,
	RejectTooFewTokens,
	RejectEmptyReference,
	RejectReferenceDigits,
	RejectReferenceLength,
	RejectNoPrice,
	RejectNoBrand,
	RejectDuplicate,
	RejectInternal,
}

// FieldRecord is the structured result of parsing one listing line.
type FieldRecord struct {
	Reference string `json:"reference"`

	// Pricing
	Currency    Currency `json:"currency,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	DiscountPct *float64 `json:"discount_pct,omitempty"`
	FinalAmount *float64 `json:"final_amount,omitempty"`

	// Attributes
	Conditions   []string `json:"conditions,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Completeness string   `json:"completeness,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	Bracelet     string   `json:"bracelet,omitempty"`
	Brand        string   `json:"brand,omitempty"`

	// Text is the normalized line the record was parsed from.
	Text string `json:"text"`
}

// HasCondition reports whether tag is one of the record's conditions.
func (r *FieldRecord) HasCondition(tag string) bool {
	return slices.Contains(r.Conditions, tag)
}

// HasColor reports whether tag is one of the record's colors.
func (r *FieldRecord) HasColor(tag string) bool {
	return slices.Contains(r.Colors, tag)
}

// Listing is a persisted FieldRecord together with its provenance.
type Listing struct {
	ID       string `json:"id"        db:"id"`
	UploadID string `json:"upload_id" db:"upload_id"`

	FieldRecord

	// SourceDate is the date encoded in the uploaded filename, if any.
	SourceDate *time.Time `json:"source_date,omitempty" db:"source_date"`
	AsOfDate   time.Time  `json:"as_of_date"            db:"as_of_date"`
	CreatedAt  time.Time  `json:"created_at"            db:"created_at"`
}

// UploadStatus is the lifecycle state of an upload.
type UploadStatus string

// Upload status constants.
const (
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadFailed     UploadStatus = "failed"
)

// Upload records one ingested file.
type Upload struct {
	ID           string       `json:"id"                   db:"id"`
	Filename     string       `json:"filename"             db:"filename"`
	AsOfDate     time.Time    `json:"as_of_date"           db:"as_of_date"`
	SourceDate   *time.Time   `json:"source_date,omitempty" db:"source_date"`
	Status       UploadStatus `json:"status"               db:"status"`
	RowsRead     int          `json:"rows_read"            db:"rows_read"`
	RowsSaved    int          `json:"rows_saved"           db:"rows_saved"`
	RowsRejected int          `json:"rows_rejected"        db:"rows_rejected"`
	ErrorText    string       `json:"error_text,omitempty" db:"error_text"`
	UploadedAt   time.Time    `json:"uploaded_at"          db:"uploaded_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty" db:"completed_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// BrandCode maps a lower-cased reference code to a brand name.
type BrandCode struct {
	RefCode string `json:"ref_code" db:"ref_code"`
	Brand   string `json:"brand"    db:"brand"`
}

// RecordFilter defines optional criteria over parsed records.
type RecordFilter struct {
	Brand          string   `json:"brand,omitempty"`
	Currency       Currency `json:"currency,omitempty"`
	Year           *int     `json:"year,omitempty"`
	Condition      string   `json:"condition,omitempty"`
	Color          string   `json:"color,omitempty"`
	MinFinalAmount *float64 `json:"min_final_amount,omitempty"`
	MaxFinalAmount *float64 `json:"max_final_amount,omitempty"`
}

// Match checks if a record satisfies every set criterion.
func (f *RecordFilter) Match(r *FieldRecord) bool {
	if f.Brand != "" && r.Brand != f.Brand {
		return false
	}
	if f.Currency != "" && r.Currency != f.Currency {
		return false
	}
	if f.Year != nil && (r.Year == nil || *r.Year != *f.Year) {
		return false
	}
	if f.Condition != "" && !r.HasCondition(f.Condition) {
		return false
	}
	if f.Color != "" && !r.HasColor(f.Color) {
		return false
	}
	return f.matchAmount(r)
}

func (f *RecordFilter) matchAmount(r *FieldRecord) bool {
	if f.MinFinalAmount == nil && f.MaxFinalAmount == nil {
		return true
	}
	if r.FinalAmount == nil {
		return false
	}
	if f.MinFinalAmount != nil && *r.FinalAmount < *f.MinFinalAmount {
		return false
	}
	if f.MaxFinalAmount != nil && *r.FinalAmount > *f.MaxFinalAmount {
		return false
	}
	return true
}
