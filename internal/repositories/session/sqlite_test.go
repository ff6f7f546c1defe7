package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/geniastudio/genia/internal/common"
	"github.com/geniastudio/genia/internal/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS sessions (
  key            TEXT PRIMARY KEY,
  uid            TEXT NOT NULL,
  email          TEXT NOT NULL,
  plan           TEXT NOT NULL DEFAULT 'free',
  quota          INTEGER NOT NULL DEFAULT 0,
  purchase_index INTEGER NOT NULL DEFAULT 1,
  ebook_count    INTEGER NOT NULL DEFAULT 0,
  ppt_count      INTEGER NOT NULL DEFAULT 0,
  active         INTEGER NOT NULL DEFAULT 1,
  created_at     TEXT NOT NULL
);
DELETE FROM sessions;
`)
	require.NoError(t, err)
	return db
}

func TestGet_EmptyDeviceReturnsNotFound(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	_, _, err := repo.Get(context.Background())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveAndGet_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	in := &models.Session{
		UID:           "458123",
		Email:         "user@example.com",
		Plan:          models.PlanPro,
		Quota:         4,
		PurchaseIndex: 2,
		EbookCount:    1,
		PPTCount:      3,
		CreatedAt:     time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, in))

	out, active, err := repo.Get(ctx)
	require.NoError(t, err)
	require.True(t, active)
	require.Equal(t, in, out)
}

func TestSave_SecondSaveReplacesRecord(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	s := &models.Session{UID: "111111", Email: "a@b.c", Plan: models.PlanFree, Quota: 1, PurchaseIndex: 1, CreatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Save(ctx, s))

	s.Quota = 0
	s.EbookCount = 1
	require.NoError(t, repo.Save(ctx, s))

	out, _, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, out.Quota)
	require.Equal(t, 1, out.EbookCount)

	var cnt int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&cnt))
	require.Equal(t, 1, cnt)
}

func TestMarkActive_TogglesFlagOnly(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	s := &models.Session{UID: "222222", Email: "a@b.c", Plan: models.PlanFree, Quota: 1, PurchaseIndex: 1, CreatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Save(ctx, s))

	require.NoError(t, repo.MarkActive(ctx, false))

	out, active, err := repo.Get(ctx)
	require.NoError(t, err)
	require.False(t, active)
	require.Equal(t, s.UID, out.UID)

	// Saving again reactivates (login rehydration).
	require.NoError(t, repo.Save(ctx, out))
	_, active, err = repo.Get(ctx)
	require.NoError(t, err)
	require.True(t, active)
}

func TestMarkActive_NoRecord(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	err := repo.MarkActive(context.Background(), false)
	require.ErrorIs(t, err, common.ErrNotFound)
}
