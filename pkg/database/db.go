package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	Path string
	// ReadOnly opens the database with mode=ro. The API server uses this;
	// only the import tool writes the catalog.
	ReadOnly bool
}

func DefaultConfig() Config {
	if p := os.Getenv("MUSICSCHOOL_DB_PATH"); p != "" {
		return Config{Path: p}
	}

	// local default: ~/.musicschool/catalog.db
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return Config{
		Path: filepath.Join(home, ".musicschool", "catalog.db"),
	}
}

func EnsureDataDir(cfg Config) error {
	return os.MkdirAll(filepath.Dir(cfg.Path), 0o755)
}

func (cfg Config) dsn() string {
	if cfg.ReadOnly {
		return "file:" + cfg.Path + "?mode=ro"
	}
	return cfg.Path
}

// Open opens the SQLite catalog database. In write mode the data directory
// is created and WAL journaling is enabled.
func Open(cfg Config) (*sql.DB, error) {
	if !cfg.ReadOnly {
		if err := EnsureDataDir(cfg); err != nil {
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if !cfg.ReadOnly {
		if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma journal_mode: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", cfg.Path, err)
	}

	return db, nil
}

func MustOpen(cfg Config) *sql.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	return db
}
