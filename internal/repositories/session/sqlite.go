// Package session stores the device session record in a local SQLite
// database.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/geniastudio/genia/internal/common"
	"github.com/geniastudio/genia/internal/dbx"
	"github.com/geniastudio/genia/internal/models"
)

// deviceKey is the fixed row key: one session per device.
const deviceKey = "device"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts the device session row and marks it active.
func (r *SQLiteRepository) Save(ctx context.Context, s *models.Session) error {
	query := `INSERT INTO sessions (key, uid, email, plan, quota, purchase_index, ebook_count, ppt_count, active, created_at)
			values (?, ?, ?, ?, ?, ?, ?, ?, 1, ?)
			ON CONFLICT(key) DO UPDATE SET uid = excluded.uid,
				email = excluded.email,
				plan = excluded.plan,
				quota = excluded.quota,
				purchase_index = excluded.purchase_index,
				ebook_count = excluded.ebook_count,
				ppt_count = excluded.ppt_count,
				active = 1,
				created_at = excluded.created_at
	`
	_, err := r.db.ExecContext(ctx, query,
		deviceKey, s.UID, s.Email, string(s.Plan), s.Quota, s.PurchaseIndex,
		s.EbookCount, s.PPTCount, s.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}

// Get loads the device session. A fresh device (no row yet) yields
// common.ErrNotFound.
func (r *SQLiteRepository) Get(ctx context.Context) (*models.Session, bool, error) {
	query := `select uid, email, plan, quota, purchase_index, ebook_count, ppt_count, active, created_at
			from sessions where key = ?`
	row := r.db.QueryRowContext(ctx, query, deviceKey)

	var (
		s       models.Session
		plan    string
		active  int
		created string
	)
	if err := row.Scan(&s.UID, &s.Email, &plan, &s.Quota, &s.PurchaseIndex,
		&s.EbookCount, &s.PPTCount, &active, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, common.ErrNotFound
		}
		return nil, false, fmt.Errorf("query row scan failed: %w", err)
	}

	s.Plan = models.Plan(plan)
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		s.CreatedAt = t
	}
	return &s, active != 0, nil
}

// MarkActive flips the logged-in flag. It expects exactly one row to be
// affected; zero rows means no session record exists yet.
func (r *SQLiteRepository) MarkActive(ctx context.Context, active bool) error {
	res, err := r.db.ExecContext(ctx, `update sessions set active=? where key=?`, active, deviceKey)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrNotFound
	}
	return nil
}
