package db

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/slot-exchange/internal/config"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

// Open picks the postgres driver for postgres URLs and sqlite for anything
// else (a file path or a file: DSN).
func Open(dsn string) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), gcfg)
	}
	return gorm.Open(sqlite.Open(dsn), gcfg)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.ProviderPolicy{},
		&models.Booking{},
		&models.Exchange{},
		&models.Reminder{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// One outstanding proposal per (requester, original booking).
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_exchanges_one_pending
		ON exchanges (requester_id, original_booking_id)
		WHERE status = 'pending'
	`).Error; err != nil {
		return fmt.Errorf("create pending exchange index: %w", err)
	}

	return nil
}
