package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    file_path    TEXT NOT NULL,
    date         TEXT NOT NULL,
    description  TEXT,
    amount       REAL NOT NULL,
    kind         TEXT NOT NULL,
    category     TEXT
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path    TEXT PRIMARY KEY,
    mtime_ns     INTEGER NOT NULL,
    size_bytes   INTEGER NOT NULL,
    parsed_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_file ON transactions(file_path);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
`
