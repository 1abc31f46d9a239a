// Package txlog keeps a local history of transfers submitted through
// walletctl. The daemon itself does not expose a reliable outgoing
// history across wallet re-scans, so the CLI records what it sent.
package txlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // sqlite driver
)

// Store is a transfer history log backed by a sqlite file.
type Store struct {
	db *sql.DB
}

// Entry is one recorded transfer.
type Entry struct {
	ID        int64
	TxHash    string
	Address   string // first destination address
	Amount    uint64 // total sent, atomic units
	Fee       uint64 // atomic units
	PaymentID string
	CreatedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS transfers (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	tx_hash     TEXT NOT NULL,
	address     TEXT NOT NULL,
	amount      INTEGER NOT NULL,
	fee         INTEGER NOT NULL,
	payment_id  TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS transfers_tx_hash ON transfers (tx_hash);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one transfer to the log. CreatedAt defaults to now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transfers (tx_hash, address, amount, fee, payment_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.TxHash, e.Address, e.Amount, e.Fee, e.PaymentID,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording transfer: %w", err)
	}
	return nil
}

// List returns the most recent transfers, newest first. limit <= 0
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, tx_hash, address, amount, fee, payment_id, created_at
	          FROM transfers ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transfers: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.TxHash, &e.Address, &e.Amount, &e.Fee, &e.PaymentID, &created); err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing transfer timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transfers: %w", err)
	}
	return entries, nil
}

// FindByTxHash returns the recorded transfers with the given hash.
func (s *Store) FindByTxHash(ctx context.Context, txHash string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tx_hash, address, amount, fee, payment_id, created_at
		 FROM transfers WHERE tx_hash = ? ORDER BY id`,
		txHash,
	)
	if err != nil {
		return nil, fmt.Errorf("querying transfers: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.TxHash, &e.Address, &e.Amount, &e.Fee, &e.PaymentID, &created); err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing transfer timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transfers: %w", err)
	}
	return entries, nil
}
