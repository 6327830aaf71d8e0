package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByPrice   = "final_amount"
	orderByYear    = "year"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByPrice:   "final_amount ASC NULLS LAST",
	orderByYear:    "year DESC NULLS LAST",
}

const defaultOrderBy = "created_at DESC"

const baseListingsSelect = `SELECT id, COALESCE(upload_id::text, ''), reference, brand, currency,
	amount::float8, discount_pct::float8, final_amount::float8,
	conditions, year, completeness, colors, bracelet,
	source_text, source_date, as_of_date, created_at
FROM listings`

const countListingsSelect = "SELECT COUNT(*) FROM listings"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	add := func(expr string, arg any) {
		conditions = append(conditions, fmt.Sprintf(expr, paramIdx))
		args = append(args, arg)
		paramIdx++
	}

	if q.UploadID != nil {
		add("upload_id = $%d", *q.UploadID)
	}
	if q.Brand != nil {
		add("LOWER(brand) = LOWER($%d)", *q.Brand)
	}
	if q.Currency != nil {
		add("currency = $%d", strings.ToUpper(*q.Currency))
	}
	if q.Reference != nil {
		add("reference ILIKE $%d", *q.Reference+"%")
	}
	if q.Year != nil {
		add("year = $%d", *q.Year)
	}
	if q.Condition != nil {
		add("$%d = ANY(conditions)", *q.Condition)
	}
	if q.Color != nil {
		add("$%d = ANY(colors)", *q.Color)
	}
	if q.Completeness != nil {
		add("completeness = $%d", *q.Completeness)
	}
	if q.MinFinalAmount != nil {
		add("final_amount >= $%d", *q.MinFinalAmount)
	}
	if q.MaxFinalAmount != nil {
		add("final_amount <= $%d", *q.MaxFinalAmount)
	}
	if q.AsOfDate != nil {
		add("as_of_date = $%d", *q.AsOfDate)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}
