package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"tpctools/internal/domain"
)

// dialect captures what differs between the SQL ledger backends.
type dialect struct {
	driverName  string
	placeholder func(n int) string
	createRuns  string
}

var dialects = map[domain.LedgerDriver]dialect{
	domain.LedgerDriverSQLite: {
		driverName:  "sqlite",
		placeholder: func(int) string { return "?" },
		createRuns: `CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			benchmark TEXT NOT NULL,
			table_name TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			partitions INTEGER NOT NULL DEFAULT 0,
			rows_written INTEGER NOT NULL DEFAULT 0,
			files INTEGER NOT NULL DEFAULT 0,
			detail TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			started_at DATETIME NOT NULL,
			finished_at DATETIME NOT NULL,
			duration_ns INTEGER NOT NULL DEFAULT 0
		)`,
	},
	domain.LedgerDriverPostgres: {
		driverName:  "postgres",
		placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
		createRuns: `CREATE TABLE IF NOT EXISTS runs (
			id VARCHAR(36) PRIMARY KEY,
			kind VARCHAR(16) NOT NULL,
			benchmark VARCHAR(16) NOT NULL,
			table_name VARCHAR(64) NOT NULL DEFAULT '',
			status VARCHAR(16) NOT NULL,
			partitions INTEGER NOT NULL DEFAULT 0,
			rows_written BIGINT NOT NULL DEFAULT 0,
			files INTEGER NOT NULL DEFAULT 0,
			detail TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			started_at TIMESTAMPTZ NOT NULL,
			finished_at TIMESTAMPTZ NOT NULL,
			duration_ns BIGINT NOT NULL DEFAULT 0
		)`,
	},
	domain.LedgerDriverMySQL: {
		driverName:  "mysql",
		placeholder: func(int) string { return "?" },
		createRuns: `CREATE TABLE IF NOT EXISTS runs (
			id VARCHAR(36) PRIMARY KEY,
			kind VARCHAR(16) NOT NULL,
			benchmark VARCHAR(16) NOT NULL,
			table_name VARCHAR(64) NOT NULL DEFAULT '',
			status VARCHAR(16) NOT NULL,
			partitions INT NOT NULL DEFAULT 0,
			rows_written BIGINT NOT NULL DEFAULT 0,
			files INT NOT NULL DEFAULT 0,
			detail LONGTEXT NOT NULL,
			error TEXT NOT NULL,
			started_at DATETIME(6) NOT NULL,
			finished_at DATETIME(6) NOT NULL,
			duration_ns BIGINT NOT NULL DEFAULT 0,
			INDEX idx_runs_kind_started (kind, started_at)
		)`,
	},
}

// DB wraps a SQL ledger connection.
type DB struct {
	conn    *sql.DB
	driver  domain.LedgerDriver
	dialect dialect
}

// OpenSQL opens (or creates) a SQL ledger and runs its migrations.
func OpenSQL(driver domain.LedgerDriver, dsn string) (*DB, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported ledger driver %q", driver)
	}

	if driver == domain.LedgerDriverSQLite {
		path, params, _ := strings.Cut(dsn, "?")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		if params != "" {
			dsn += "&" + params
		}
	}

	conn, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == domain.LedgerDriverSQLite {
		// SQLite only supports one writer; a single connection avoids SQLITE_BUSY
		conn.SetMaxOpenConns(1)
	}

	db := &DB{conn: conn, driver: driver, dialect: d}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Driver reports which backend this ledger uses.
func (db *DB) Driver() domain.LedgerDriver {
	return db.driver
}

func (db *DB) migrate() error {
	migrations := []string{
		db.dialect.createRuns,
		`CREATE INDEX IF NOT EXISTS idx_runs_kind_started ON runs(kind, started_at)`,
	}
	if db.driver == domain.LedgerDriverMySQL {
		// MySQL has no CREATE INDEX IF NOT EXISTS; its index is part of the table DDL
		migrations = migrations[:1]
	}
	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(m), err)
		}
	}
	return nil
}

// rebind rewrites '?' placeholders into the dialect's form.
func (db *DB) rebind(query string) string {
	if db.driver != domain.LedgerDriverPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString(db.dialect.placeholder(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
