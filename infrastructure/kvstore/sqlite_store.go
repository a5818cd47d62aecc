// Package kvstore implementa o armazenamento chave-valor durável da fila offline.
package kvstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/migration"
)

const kvTable = "kv_entries"

// SQLiteStore persiste cada chave em uma linha da tabela kv_entries
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore abre (ou cria) o arquivo e aplica as migrações
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "kvstore: failed to create directory")
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "kvstore: failed to open sqlite")
	}
	// Um único escritor evita SQLITE_BUSY entre goroutines do mesmo processo
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "kvstore: sqlite ping")
	}

	if err := migration.UpSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := squirrel.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, errors.Wrap(err, "kvstore: build get query")
	}

	var value []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "kvstore: get %s", key)
	}

	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := squirrel.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "kvstore: build set query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "kvstore: set %s", key)
	}

	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "kvstore: build delete query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "kvstore: delete %s", key)
	}

	return nil
}

func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := squirrel.
		Select("key").
		From(kvTable).
		Where(squirrel.Expr("substr(key, 1, ?) = ?", len(prefix), prefix)).
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "kvstore: build keys query")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "kvstore: list keys")
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, errors.Wrap(err, "kvstore: scan key")
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "kvstore: iterate keys")
	}

	return keys, nil
}

// Path retorna o caminho do arquivo sqlite
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
