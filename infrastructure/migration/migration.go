package migration

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// UpSQLite aplica as migrações do armazenamento local da fila offline
func UpSQLite(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(sqliteMigrations, "sqlite")
	if err != nil {
		return errors.Wrap(err, "migration: sqlite migrations not embedded")
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return errors.Wrap(err, "migration: goose provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "migration: goose up")
	}

	for _, result := range results {
		logrus.WithFields(logrus.Fields{
			"version":  result.Source.Version,
			"duration": result.Duration,
		}).Debug("migration: applied")
	}

	return nil
}
