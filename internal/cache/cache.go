// Package cache persists a fetched snapshot of the books to SQLite so
// reports can be computed offline. It is a cache of the collaborator's
// data, never the system of record.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

const dateFormat = "2006-01-02"

// Store is a SQLite-backed snapshot store.
type Store struct {
	db   *sql.DB
	path string
}

// Snapshot is the locally cached view of the books.
type Snapshot struct {
	Accounts     []model.Account
	AccountTypes []model.AccountType
	Entries      []model.JournalEntry
	SyncedAt     time.Time
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save replaces the cached snapshot atomically.
func (s *Store) Save(snap Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"journal_lines", "journal_entries", "accounts", "account_types"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, t := range snap.AccountTypes {
		_, err := tx.Exec(
			"INSERT INTO account_types (id, name, code, description) VALUES (?, ?, ?, ?)",
			t.ID, t.Name, t.Code, t.Description)
		if err != nil {
			return fmt.Errorf("inserting account type %d: %w", t.ID, err)
		}
	}

	for _, a := range snap.Accounts {
		_, err := tx.Exec(
			"INSERT INTO accounts (id, name, code, account_type_id, parent_id, opening_balance, is_active) VALUES (?, ?, ?, ?, ?, ?, ?)",
			a.ID, a.Name, a.Code, a.AccountTypeID, a.ParentID, a.OpeningBalance.String(), a.IsActive)
		if err != nil {
			return fmt.Errorf("inserting account %d: %w", a.ID, err)
		}
	}

	for _, e := range snap.Entries {
		_, err := tx.Exec(
			"INSERT INTO journal_entries (id, date, voucher_no, voucher_type, narration) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Date.Format(dateFormat), e.VoucherNo, string(e.VoucherType), e.Narration)
		if err != nil {
			return fmt.Errorf("inserting entry %d: %w", e.ID, err)
		}
		for i, l := range e.Lines {
			_, err := tx.Exec(
				"INSERT INTO journal_lines (id, entry_id, position, account_id, debit, credit) VALUES (?, ?, ?, ?, ?, ?)",
				l.ID, e.ID, i, l.AccountID, l.Debit.String(), l.Credit.String())
			if err != nil {
				return fmt.Errorf("inserting line %d of entry %d: %w", l.ID, e.ID, err)
			}
		}
	}

	syncedAt := snap.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now().UTC()
	}
	_, err = tx.Exec(
		"INSERT INTO meta (key, value) VALUES ('synced_at', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		syncedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording sync time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load reads the cached snapshot back.
func (s *Store) Load() (Snapshot, error) {
	var snap Snapshot

	rows, err := s.db.Query("SELECT id, name, code, description FROM account_types ORDER BY id")
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading account types: %w", err)
	}
	for rows.Next() {
		var t model.AccountType
		if err := rows.Scan(&t.ID, &t.Name, &t.Code, &t.Description); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("scanning account type: %w", err)
		}
		snap.AccountTypes = append(snap.AccountTypes, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading account types: %w", err)
	}

	rows, err = s.db.Query("SELECT id, name, code, account_type_id, parent_id, opening_balance, is_active FROM accounts ORDER BY id")
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading accounts: %w", err)
	}
	for rows.Next() {
		var a model.Account
		var opening string
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.AccountTypeID, &a.ParentID, &opening, &a.IsActive); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("scanning account: %w", err)
		}
		if a.OpeningBalance, err = decimal.NewFromString(opening); err != nil {
			rows.Close()
			return Snapshot{}, fmt.Errorf("parsing opening balance of account %d: %w", a.ID, err)
		}
		snap.Accounts = append(snap.Accounts, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading accounts: %w", err)
	}

	entries, err := s.loadEntries()
	if err != nil {
		return Snapshot{}, err
	}
	snap.Entries = entries

	var synced string
	err = s.db.QueryRow("SELECT value FROM meta WHERE key = 'synced_at'").Scan(&synced)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return Snapshot{}, fmt.Errorf("loading sync time: %w", err)
	default:
		if snap.SyncedAt, err = time.Parse(time.RFC3339, synced); err != nil {
			return Snapshot{}, fmt.Errorf("parsing sync time %q: %w", synced, err)
		}
	}

	return snap, nil
}

func (s *Store) loadEntries() ([]model.JournalEntry, error) {
	rows, err := s.db.Query("SELECT id, date, voucher_no, voucher_type, narration FROM journal_entries ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	var entries []model.JournalEntry
	byID := make(map[int]int)
	for rows.Next() {
		var e model.JournalEntry
		var date, vtype string
		if err := rows.Scan(&e.ID, &date, &e.VoucherNo, &vtype, &e.Narration); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if e.Date, err = time.Parse(dateFormat, date); err != nil {
			rows.Close()
			return nil, fmt.Errorf("parsing date of entry %d: %w", e.ID, err)
		}
		e.VoucherType = model.VoucherType(vtype)
		byID[e.ID] = len(entries)
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	rows, err = s.db.Query("SELECT id, entry_id, account_id, debit, credit FROM journal_lines ORDER BY entry_id, position")
	if err != nil {
		return nil, fmt.Errorf("loading lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l model.JournalLine
		var entryID int
		var debit, credit string
		if err := rows.Scan(&l.ID, &entryID, &l.AccountID, &debit, &credit); err != nil {
			return nil, fmt.Errorf("scanning line: %w", err)
		}
		if l.Debit, err = decimal.NewFromString(debit); err != nil {
			return nil, fmt.Errorf("parsing debit of line %d: %w", l.ID, err)
		}
		if l.Credit, err = decimal.NewFromString(credit); err != nil {
			return nil, fmt.Errorf("parsing credit of line %d: %w", l.ID, err)
		}
		idx, ok := byID[entryID]
		if !ok {
			return nil, fmt.Errorf("line %d references unknown entry %d", l.ID, entryID)
		}
		entries[idx].Lines = append(entries[idx].Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return entries, nil
}
