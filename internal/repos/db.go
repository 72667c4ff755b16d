package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Phone inventory. Overrides and listings are JSON objects keyed by platform.
CREATE TABLE IF NOT EXISTS phones(
  id TEXT PRIMARY KEY,
  brand TEXT NOT NULL,
  model TEXT NOT NULL,
  storage TEXT,
  color TEXT,
  condition TEXT NOT NULL CHECK (condition IN ('New','Good','Usable','Scrap')),
  base_price NUMERIC NOT NULL DEFAULT 0 CHECK (base_price >= 0),
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  tags TEXT NOT NULL DEFAULT '',
  price_overrides TEXT NOT NULL DEFAULT '{}',
  listings TEXT NOT NULL DEFAULT '{}',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_phones_brand      ON phones(LOWER(brand));
CREATE INDEX IF NOT EXISTS idx_phones_condition  ON phones(condition);
CREATE INDEX IF NOT EXISTS idx_phones_updated_at ON phones(updated_at);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM phones`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting sample phone")
	_, err := db.Exec(`
		INSERT INTO phones(id, brand, model, storage, color, condition, base_price, stock, tags)
		VALUES ('ph-sample-001', 'Apple', 'iPhone 12', '128GB', 'Black', 'Good', 400.0, 5, 'refurbished')
	`)
	return err
}

// EnsureAdmin creates or refreshes the single admin account. Safe to run on
// every start.
func EnsureAdmin(db *sqlx.DB, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id, email, name, password_hash, role)
		VALUES ('u-admin', ?, 'Admin', ?, 'ADMIN')
		ON CONFLICT(email) DO UPDATE SET password_hash = excluded.password_hash
	`, email, string(hash))
	return err
}
