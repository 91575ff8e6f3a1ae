package database

import (
	"context"
	"fmt"

	"tracker/src/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dsn(cfg *config.Config) string {
	if cfg.Databases.SQL.ConnectionString != "" {
		return cfg.Databases.SQL.ConnectionString
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Databases.SQL.Host,
		cfg.Databases.SQL.Username,
		cfg.Databases.SQL.Password,
		cfg.Databases.SQL.Database,
		cfg.Databases.SQL.Port)
}

// SetupDB creates the pgx connection pool used by the ledger repositories.
func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}
	return pool, nil
}

// SetupGormDB opens the gorm connection used by the admin models (users,
// report schedules).
func SetupGormDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn(cfg)), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %v", err)
	}
	return db, nil
}
