package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cloudix/coindesk/internal/logger"
)

// sqlDocument is the SQLite-backed [Document]. All documents share one
// table keyed by (doc, key); each instance is scoped to one doc name.
type sqlDocument struct {
	db     *DB
	name   string
	logger *logger.Logger
}

// NewDocument returns a [Document] scoped to the named key space inside
// the shared documents table.
func NewDocument(db *DB, name string, log *logger.Logger) Document {
	return &sqlDocument{db: db, name: name, logger: log}
}

func (d *sqlDocument) Get(ctx context.Context, key string, dest any) error {
	query, args, err := sq.Select("value").
		From("documents").
		Where(sq.Eq{"doc": d.name, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var raw string
	row := d.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrKeyNotFound
		}
		d.logger.Err(err).
			Str("func", "sqlDocument.Get").
			Str("doc", d.name).
			Str("key", key).
			Msg("failed to scan document value")
		return fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("decode document value (doc=%s key=%s): %w", d.name, key, err)
	}

	return nil
}

func (d *sqlDocument) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document value (doc=%s key=%s): %w", d.name, key, err)
	}

	query, args, err := sq.Insert("documents").
		Columns("doc", "key", "value", "updated_at").
		Values(d.name, key, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT(doc, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = d.db.ExecContext(ctx, query, args...); err != nil {
		d.logger.Err(err).
			Str("func", "sqlDocument.Set").
			Str("doc", d.name).
			Str("key", key).
			Msg("failed to upsert document value")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (d *sqlDocument) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("documents").
		Where(sq.Eq{"doc": d.name, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = d.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (d *sqlDocument) Has(ctx context.Context, key string) (bool, error) {
	query, args, err := sq.Select("1").
		From("documents").
		Where(sq.Eq{"doc": d.name, "key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var one int
	if err = d.db.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return true, nil
}

func (d *sqlDocument) Clear(ctx context.Context) error {
	query, args, err := sq.Delete("documents").
		Where(sq.Eq{"doc": d.name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = d.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
