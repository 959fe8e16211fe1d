package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres stores values in the client_storage table created by the
// translation service migrations.
type Postgres struct {
	db   DBTX
	stmt statements
	opts options
}

func NewPostgres(db DBTX, opts ...Option) *Postgres {
	return &Postgres{db: db, stmt: newStatements(sq.Dollar), opts: buildOptions(opts)}
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := p.stmt.load(key)
	if err != nil {
		return nil, fmt.Errorf("build load: %w", err)
	}
	var value []byte
	if err := p.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) Save(ctx context.Context, key string, data []byte) error {
	if err := p.opts.checkQuota(data); err != nil {
		return err
	}
	query, args, err := p.stmt.save(key, data)
	if err != nil {
		return fmt.Errorf("build save: %w", err)
	}
	if _, err := p.db.Exec(ctx, query, args...); err != nil {
		if isQuotaError(err) {
			return ErrQuotaExceeded
		}
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	query, args, err := p.stmt.remove(key)
	if err != nil {
		return fmt.Errorf("build remove: %w", err)
	}
	if _, err := p.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func isQuotaError(err error) bool {
	var e *pgconn.PgError
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case pgerrcode.ProgramLimitExceeded, pgerrcode.StringDataRightTruncationDataException, pgerrcode.DiskFull:
		return true
	default:
		return false
	}
}
