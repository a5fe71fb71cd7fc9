package db_postgresql

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"expansion/infra/database"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// NewConnection opens the primary database and applies pending migrations.
// It panics when the database is unreachable.
func NewConnection(config *database.Config, log *zap.Logger) *sql.DB {
	driver := config.Driver
	if driver == "" {
		driver = "postgres"
	}
	log.Info("conectando ao banco de dados",
		zap.String("host", config.Host),
		zap.String("port", config.Port),
		zap.String("database", config.Database))

	db, err := sql.Open(driver, config.DSN())
	if err != nil {
		errConnection(log, config.Environment, err)
	}
	if err := db.Ping(); err != nil {
		errConnection(log, config.Environment, err)
	}
	if err := runMigrations(db, config.MigrationsPath, log); err != nil {
		errConnection(log, config.Environment, err)
	}
	return db
}

func errConnection(log *zap.Logger, environment string, err error) {
	log.Error("erro de conexão", zap.String("environment", environment), zap.Error(err))
	panic("failed to connect " + environment + " postgres database_infra: " + err.Error())
}

func runMigrations(conn *sql.DB, path string, log *zap.Logger) error {
	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	if path == "" {
		path = "db/migration"
	}
	if !filepath.IsAbs(path) {
		pwd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = filepath.Join(pwd, path)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Debug("migrações em dia")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("migrações aplicadas")
	return nil
}
