package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cashflowhq/cash-flow-api/config"
)

// NewDB opens a Postgres connection through the pgx stdlib driver and wraps
// it with GORM. The pool settings come from configuration.
func NewDB(cfg *config.Config, logger *logrus.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdle)
	sqlDB.SetConnMaxLifetime(cfg.DBMaxConnLife)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	level := gormlogger.Warn
	if cfg.Env == "development" {
		level = gormlogger.Info
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("init gorm: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"host": cfg.DBHost,
		"db":   cfg.DBName,
	}).Info("postgres connected")
	return db, nil
}
