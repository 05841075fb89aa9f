package store

import (
	"context"
	"database/sql"
	"time"
)

type Run struct {
	ID             string    `json:"id"`
	Industry       string    `json:"industry"`
	Location       string    `json:"location"`
	Source         string    `json:"source"`
	LeadCount      int       `json:"lead_count"`
	SyntheticCount int       `json:"synthetic_count"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func InsertRun(ctx context.Context, db *sql.DB, r Run) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO runs(id, industry, location, source, lead_count, synthetic_count, error, created_at)
VALUES(?,?,?,?,?,?,?,?);`,
		r.ID,
		r.Industry,
		r.Location,
		r.Source,
		r.LeadCount,
		r.SyntheticCount,
		r.Error,
		r.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, industry, location, source, lead_count, synthetic_count, error, created_at
FROM runs
ORDER BY created_at DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Industry, &r.Location, &r.Source, &r.LeadCount, &r.SyntheticCount, &r.Error, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

// PruneRuns keeps the newest keep rows and deletes the rest. Returns rows
// removed.
func PruneRuns(ctx context.Context, db *sql.DB, keep int) (int64, error) {
	if keep <= 0 {
		keep = 500
	}
	res, err := db.ExecContext(ctx, `
DELETE FROM runs
WHERE id NOT IN (
  SELECT id FROM runs ORDER BY created_at DESC LIMIT ?
);`, keep)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
