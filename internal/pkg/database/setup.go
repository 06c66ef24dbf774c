package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ManuelReschke/CoronaDash/app/models"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

// SetupDatabase connects using DB_DRIVER (mysql or sqlite), retrying transient
// failures, and migrates the case_records table.
func SetupDatabase() error {
	dialector, err := dialectorFromEnv()
	if err != nil {
		return err
	}

	for i := 0; i < maxRetries; i++ {
		DB, err = Open(dialector)
		if err == nil {
			return nil
		}

		log.Warnf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Infof("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	return fmt.Errorf("connect database: %w", err)
}

// Open opens a gorm handle on the given dialector and migrates the schema.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	level := logger.Warn
	if env.IsDebug() {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.CaseRecord{}); err != nil {
		return nil, fmt.Errorf("migrate case_records: %w", err)
	}
	return db, nil
}

// GetDB returns the handle created by SetupDatabase.
func GetDB() *gorm.DB {
	return DB
}

func dialectorFromEnv() (gorm.Dialector, error) {
	switch driver := env.GetEnv("DB_DRIVER", "mysql"); driver {
	case "mysql":
		// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASSWORD", ""),
			env.GetEnv("DB_HOST", "127.0.0.1"),
			env.GetEnv("DB_PORT", "3306"),
			env.GetEnv("DB_NAME", "coronadash"),
		)
		return mysql.New(mysql.Config{
			DSN:                       dsn,  // data source name
			DefaultStringSize:         256,  // default size for string fields
			DisableDatetimePrecision:  true, // disable datetime precision, which not supported before MySQL 5.6
			SkipInitializeWithVersion: false,
		}), nil
	case "sqlite":
		return sqlite.Open(env.GetEnv("DB_PATH", "coronadash.db")), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
