// Package sqlite provides a SQLite-backed implementation of storage.Storage.
//
// Scalar attributes live in columns so the filter runs in SQL. The contact
// lists are stored as JSON text and decoded on the way out. The seq column
// keeps the import order, which is the store's natural order.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/aanand-mishra/customer-search/internal/config"
	"github.com/aanand-mishra/customer-search/internal/storage"
	"github.com/aanand-mishra/customer-search/internal/types"
)

// driverName is the go-sqlite3 driver with fold() registered on every
// connection. fold is strings.ToLower, so name matching folds the same
// letters as storage.Filter; SQLite's own lower() folds ASCII only.
const driverName = "sqlite3_fold"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold", strings.ToLower, true)
		},
	})
}

// SQLite is the database-backed store. Db is exported so callers and tests
// can reach the handle directly, as with any *sql.DB.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the database at cfg.Storage.SQLitePath and creates the
// customers table if it does not exist.
func New(cfg *config.Config) (*SQLite, error) {
	return Open(cfg.Storage.SQLitePath)
}

// Open is New for a bare path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS customers (
			seq            INTEGER PRIMARY KEY AUTOINCREMENT,
			id             TEXT    NOT NULL UNIQUE,
			first_name     TEXT    NOT NULL,
			last_name      TEXT    NOT NULL,
			date_of_birth  TEXT    NOT NULL,
			marital_status TEXT    NOT NULL,
			secure_id      TEXT    NOT NULL,
			addresses      TEXT    NOT NULL DEFAULT '[]',
			phones         TEXT    NOT NULL DEFAULT '[]',
			emails         TEXT    NOT NULL DEFAULT '[]'
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// Count returns the number of stored customers.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.Db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

// Seed imports customers when the table is empty and reports how many rows
// were written. A populated table is left untouched.
func (s *SQLite) Seed(ctx context.Context, customers []types.Customer) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("Seed: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	tx, err := s.Db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("Seed: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO customers
			(id, first_name, last_name, date_of_birth, marital_status, secure_id, addresses, phones, emails)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("Seed: prepare: %w", err)
	}
	defer stmt.Close()

	for _, c := range customers {
		addresses, phones, emails, err := encodeContacts(c)
		if err != nil {
			return 0, fmt.Errorf("Seed: customer %s: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.FirstName, c.LastName, c.DateOfBirth, string(c.MaritalStatus), c.SecureID,
			addresses, phones, emails,
		); err != nil {
			return 0, fmt.Errorf("Seed: insert %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("Seed: commit: %w", err)
	}
	return len(customers), nil
}

// SearchCustomers filters in SQL with the same rules as storage.Filter.
func (s *SQLite) SearchCustomers(ctx context.Context, f storage.Filter) ([]types.Customer, error) {
	rows, err := s.Db.QueryContext(ctx, `
		SELECT id, first_name, last_name, date_of_birth, marital_status, secure_id, addresses, phones, emails
		FROM customers
		WHERE (?1 = '' OR instr(fold(first_name), fold(?1)) > 0)
		  AND (?2 = '' OR instr(fold(last_name), fold(?2)) > 0)
		  AND (?3 = '' OR date_of_birth = ?3)
		ORDER BY seq
	`, f.FirstName, f.LastName, f.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("SearchCustomers: query: %w: %w", storage.ErrUnavailable, err)
	}
	defer rows.Close()

	customers := make([]types.Customer, 0)

	for rows.Next() {
		var (
			c                         types.Customer
			status                    string
			addresses, phones, emails string
		)
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.DateOfBirth, &status, &c.SecureID,
			&addresses, &phones, &emails,
		); err != nil {
			return nil, fmt.Errorf("SearchCustomers: scan row: %w: %w", storage.ErrUnavailable, err)
		}
		c.MaritalStatus = types.MaritalStatus(status)

		if err := decodeContacts(&c, addresses, phones, emails); err != nil {
			return nil, fmt.Errorf("SearchCustomers: customer %s: %w: %w", c.ID, storage.ErrUnavailable, err)
		}

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchCustomers: rows iteration: %w: %w", storage.ErrUnavailable, err)
	}

	return customers, nil
}

func encodeContacts(c types.Customer) (addresses, phones, emails string, err error) {
	enc := func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if addresses, err = enc(nonNil(c.Addresses)); err != nil {
		return "", "", "", fmt.Errorf("encode addresses: %w", err)
	}
	if phones, err = enc(nonNil(c.Phones)); err != nil {
		return "", "", "", fmt.Errorf("encode phones: %w", err)
	}
	if emails, err = enc(nonNil(c.Emails)); err != nil {
		return "", "", "", fmt.Errorf("encode emails: %w", err)
	}
	return addresses, phones, emails, nil
}

func decodeContacts(c *types.Customer, addresses, phones, emails string) error {
	if err := json.Unmarshal([]byte(addresses), &c.Addresses); err != nil {
		return fmt.Errorf("decode addresses: %w", err)
	}
	if err := json.Unmarshal([]byte(phones), &c.Phones); err != nil {
		return fmt.Errorf("decode phones: %w", err)
	}
	if err := json.Unmarshal([]byte(emails), &c.Emails); err != nil {
		return fmt.Errorf("decode emails: %w", err)
	}
	return nil
}

// nonNil stores absent lists as [] so they round-trip as empty, not null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
