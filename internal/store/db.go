package store

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"mbfeed/internal/mercado"
)

// PersistenceError is returned when a batch could not be committed. Nothing
// from the batch is stored when it is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *PersistenceError) Unwrap() error { return e.Err }

func OpenDB(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS symbols (
	id               BIGSERIAL PRIMARY KEY,
	base_currency    TEXT NOT NULL DEFAULT '',
	currency         TEXT NOT NULL DEFAULT '',
	symbol           TEXT NOT NULL UNIQUE,
	description      TEXT NOT NULL DEFAULT '',
	exchange_listed  BOOLEAN NOT NULL DEFAULT FALSE,
	exchange_traded  BOOLEAN NOT NULL DEFAULT FALSE,
	min_movement     TEXT NOT NULL DEFAULT '',
	price_scale      DOUBLE PRECISION NOT NULL DEFAULT 0,
	session_regular  TEXT NOT NULL DEFAULT '',
	timezone         TEXT NOT NULL DEFAULT '',
	type             TEXT NOT NULL DEFAULT '',
	deposit_minimum  DOUBLE PRECISION NOT NULL DEFAULT 0,
	withdraw_minimum DOUBLE PRECISION NOT NULL DEFAULT 0,
	withdrawal_fee   DOUBLE PRECISION NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS market_data (
	id     BIGSERIAL PRIMARY KEY,
	symbol TEXT NOT NULL,
	buy    DOUBLE PRECISION NOT NULL DEFAULT 0,
	sell   DOUBLE PRECISION NOT NULL DEFAULT 0,
	high   DOUBLE PRECISION NOT NULL DEFAULT 0,
	low    DOUBLE PRECISION NOT NULL DEFAULT 0,
	open   DOUBLE PRECISION NOT NULL DEFAULT 0,
	last   DOUBLE PRECISION NOT NULL DEFAULT 0,
	volume DOUBLE PRECISION NOT NULL DEFAULT 0,
	date   BIGINT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS market_data_symbol_idx ON market_data (symbol)`,
}

const insertSymbol = `INSERT INTO symbols (base_currency, currency, symbol, description, exchange_listed, exchange_traded,
	min_movement, price_scale, session_regular, timezone, type, deposit_minimum, withdraw_minimum, withdrawal_fee)
VALUES (:base_currency, :currency, :symbol, :description, :exchange_listed, :exchange_traded,
	:min_movement, :price_scale, :session_regular, :timezone, :type, :deposit_minimum, :withdraw_minimum, :withdrawal_fee)
ON CONFLICT (symbol) DO NOTHING`

const insertTick = `INSERT INTO market_data (symbol, buy, sell, high, low, open, last, volume, date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

// Repository owns the symbols and market_data tables. Every method runs on
// its own short-lived transaction or query; no handle outlives a call.
type Repository struct {
	db  *sqlx.DB
	log *slog.Logger
}

func NewRepository(db *sqlx.DB, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{db: db, log: log}
}

// EnsureSchema creates the tables if they do not exist yet. Existing tables
// are left untouched.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	return r.inTx(ctx, "create schema", func(tx *sqlx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpsertSymbols inserts every pair not stored yet and returns how many rows
// were added. Existing pairs are never overwritten. The batch is atomic.
func (r *Repository) UpsertSymbols(ctx context.Context, catalog []mercado.SymbolInfo) (int, error) {
	if len(catalog) == 0 {
		return 0, nil
	}
	var inserted int64
	err := r.inTx(ctx, "store symbols", func(tx *sqlx.Tx) error {
		for _, info := range catalog {
			res, err := tx.NamedExecContext(ctx, insertSymbol, symbolFromInfo(info))
			if err != nil {
				return fmt.Errorf("insert symbol %s: %w", info.Symbol, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		r.log.Error("store symbols failed, batch rolled back", "err", err)
		return 0, err
	}
	r.log.Info("stored symbols", "received", len(catalog), "inserted", inserted)
	return int(inserted), nil
}

// InsertTicks appends one row per record. Records are converted before the
// transaction starts; any conversion or store failure leaves the table
// unchanged and returns a nil slice.
func (r *Repository) InsertTicks(ctx context.Context, records []mercado.Ticker) ([]Tick, error) {
	if len(records) == 0 {
		return nil, nil
	}
	ticks := make([]Tick, 0, len(records))
	for _, rec := range records {
		t, err := tickFromTicker(rec)
		if err != nil {
			r.log.Error("store market data failed, batch dropped", "pair", rec.Pair, "err", err)
			return nil, err
		}
		ticks = append(ticks, t)
	}

	err := r.inTx(ctx, "store market data", func(tx *sqlx.Tx) error {
		for i := range ticks {
			t := &ticks[i]
			err := tx.QueryRowxContext(ctx, insertTick,
				t.Symbol, t.Buy, t.Sell, t.High, t.Low, t.Open, t.Last, t.Volume, t.Date,
			).Scan(&t.ID)
			if err != nil {
				return fmt.Errorf("insert tick %s: %w", t.Symbol, err)
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("store market data failed, batch rolled back", "rows", len(ticks), "err", err)
		return nil, err
	}
	return ticks, nil
}

func (r *Repository) ListSymbols(ctx context.Context) ([]Symbol, error) {
	var symbols []Symbol
	err := r.db.SelectContext(ctx, &symbols, `SELECT id, base_currency, currency, symbol, description, exchange_listed,
	exchange_traded, min_movement, price_scale, session_regular, timezone, type, deposit_minimum, withdraw_minimum,
	withdrawal_fee FROM symbols ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	return symbols, nil
}

// ListTicks returns every stored tick ordered by observation time.
func (r *Repository) ListTicks(ctx context.Context) ([]Tick, error) {
	var ticks []Tick
	err := r.db.SelectContext(ctx, &ticks,
		`SELECT id, symbol, buy, sell, high, low, open, last, volume, date FROM market_data ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list market data: %w", err)
	}
	return ticks, nil
}

func (r *Repository) ListTicksBySymbol(ctx context.Context, pair string) ([]Tick, error) {
	var ticks []Tick
	err := r.db.SelectContext(ctx, &ticks,
		`SELECT id, symbol, buy, sell, high, low, open, last, volume, date FROM market_data WHERE symbol = $1 ORDER BY date, id`,
		pair)
	if err != nil {
		return nil, fmt.Errorf("list market data for %s: %w", pair, err)
	}
	return ticks, nil
}

// inTx runs fn in a transaction. The deferred rollback releases the handle
// on every path and is a no-op after a successful commit.
func (r *Repository) inTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return &PersistenceError{Op: op, Err: fmt.Errorf("begin: %w", err)}
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: op, Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}
