package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Upload queries.
const (
	queryCreateUpload = `
		INSERT INTO uploads (filename, as_of_date, source_date, status)
		VALUES (@filename, @as_of_date, @source_date, @status)
		RETURNING id, uploaded_at`

	queryFinishUpload = `
		UPDATE uploads SET
			status        = @status,
			rows_read     = @rows_read,
			rows_saved    = @rows_saved,
			rows_rejected = @rows_rejected,
			error_text    = NULLIF(@error_text, ''),
			completed_at  = now()
		WHERE id = @id
		RETURNING completed_at`

	uploadColumns = `id, filename, as_of_date, source_date, status,
		rows_read, rows_saved, rows_rejected, COALESCE(error_text, ''),
		uploaded_at, completed_at`

	queryGetUpload = `SELECT ` + uploadColumns + ` FROM uploads WHERE id = $1`

	queryListUploads = `SELECT ` + uploadColumns + `
		FROM uploads
		ORDER BY uploaded_at DESC
		LIMIT $1`

	queryMarkStaleUploadsFailed = `
		UPDATE uploads SET
			status       = 'failed',
			error_text   = 'interrupted',
			completed_at = now()
		WHERE status = 'processing' AND uploaded_at < $1`
)

// Listing queries.
var listingCopyColumns = []string{
	"upload_id", "reference", "brand", "currency",
	"amount", "discount_pct", "final_amount",
	"conditions", "year", "completeness", "colors", "bracelet",
	"source_text", "source_date", "as_of_date",
}

const (
	queryDeleteListingsOlderThan = `DELETE FROM listings WHERE created_at < $1`

	queryCountListings = `SELECT COUNT(*) FROM listings`
)

// Brand code queries.
const (
	queryListBrandCodes = `SELECT ref_code, brand FROM brand_codes ORDER BY ref_code`

	queryUpsertBrandCode = `
		INSERT INTO brand_codes (ref_code, brand)
		VALUES ($1, $2)
		ON CONFLICT (ref_code) DO UPDATE
			SET brand      = EXCLUDED.brand,
				updated_at = now()
			WHERE brand_codes.brand <> EXCLUDED.brand`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
