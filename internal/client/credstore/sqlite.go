package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskease/internal/client/migrations"
	"github.com/dmitrijs2005/taskease/internal/common"
	"github.com/dmitrijs2005/taskease/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the credential in the credentials table, one row per origin.
type SQLiteStore struct {
	db     *sql.DB
	origin string
}

func NewSQLiteStore(db *sql.DB, origin string) *SQLiteStore {
	return &SQLiteStore{db: db, origin: origin}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE origin = ? AND name = ?`,
		s.origin, common.CredentialEntryName,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get credential[%s]: %w", s.origin, err)
	}
	return value, true, nil
}

// Set replaces whatever the origin held with the given credential, so an
// origin never carries more than one row.
func (s *SQLiteStore) Set(ctx context.Context, credential string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE origin = ?`, s.origin); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO credentials (origin, name, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
			s.origin, common.CredentialEntryName, credential,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set credential[%s]: %w", s.origin, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE origin = ?`, s.origin)
	if err != nil {
		return fmt.Errorf("failed to clear credential[%s]: %w", s.origin, err)
	}
	return nil
}
