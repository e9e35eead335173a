package sqlite

import (
	"os"

	"kesha-shop/internal/storage/gormstore"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultPath = "kesha.db"

// NewSQLiteFromEnv opens the client-resident database file named by
// SQLITE_PATH and migrates the slot table.
func NewSQLiteFromEnv() (*gorm.DB, error) {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = defaultPath
	}
	return Open(path)
}

func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&gormstore.Slot{}); err != nil {
		return nil, err
	}

	return db, nil
}
