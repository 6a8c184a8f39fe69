// The init package contains functions that setup required dependencies such as the SQLite database and the
// storage backend selected in the configuration.
package initialization

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/config"
	"github.com/sidereusnuntius/neonprofile/internal/storage"
	"github.com/sidereusnuntius/neonprofile/internal/storage/filestore"
	"github.com/sidereusnuntius/neonprofile/internal/storage/memstore"
	"github.com/sidereusnuntius/neonprofile/internal/storage/sqlitekv"
)

// SetupDB applies all remaining migrations found in folder. A database that is already up to date is not an error.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Str("folder", folder).Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Debug().Msg("database schema up to date")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to run migrations")
	}
	return err
}

// OpenDB opens the SQLite database. A single connection is kept so in-memory databases are shared by every query.
func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, db.Ping()
}

// OpenStorage builds the durable storage backend named by cfg.StorageDriver. The returned close function
// releases the backend's resources and is never nil.
func OpenStorage(cfg *config.Configuration) (kv storage.KV, closeFn func() error, err error) {
	closeFn = func() error { return nil }

	switch cfg.StorageDriver {
	case config.SQLite:
		var d *sql.DB
		if d, err = OpenDB(cfg.DbUrl); err != nil {
			return
		}
		log.Info().Str("dsn", cfg.DbUrl).Msg("database connection established")

		if err = SetupDB(d, cfg.MigrationsFolder, cfg.DbUrl); err != nil {
			d.Close()
			return
		}
		kv, closeFn = sqlitekv.New(d), d.Close
	case config.File:
		kv, err = filestore.New(cfg.StorageDir)
	case config.Memory:
		log.Warn().Msg("using in-memory storage; nothing will survive a restart")
		kv = memstore.New()
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	return
}
