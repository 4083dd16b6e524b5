package cache

const schema = `
CREATE TABLE IF NOT EXISTS account_types (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    code TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    code TEXT NOT NULL,
    account_type_id INTEGER NOT NULL,
    parent_id INTEGER NOT NULL DEFAULT 0,   -- 0 = top-level
    opening_balance TEXT NOT NULL,          -- decimal string
    is_active INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS journal_entries (
    id INTEGER PRIMARY KEY,
    date TEXT NOT NULL,                     -- YYYY-MM-DD
    voucher_no TEXT NOT NULL,
    voucher_type TEXT NOT NULL,
    narration TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS journal_lines (
    id INTEGER PRIMARY KEY,
    entry_id INTEGER NOT NULL REFERENCES journal_entries(id),
    position INTEGER NOT NULL,
    account_id INTEGER NOT NULL,
    debit TEXT NOT NULL,
    credit TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_lines_entry
    ON journal_lines(entry_id, position);

CREATE INDEX IF NOT EXISTS idx_journal_lines_account
    ON journal_lines(account_id);

CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
