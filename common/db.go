package common

import (
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	logger "portfolio/loggers"
)

// ConnectDb opens the sqlite database named by the PORTFOLIO_DB environment
// variable. A missing variable is an error so the process fails fast at
// startup instead of silently running against an unconfigured backend.
func ConnectDb(dbFile string) (*gorm.DB, error) {
	if dbFile == "" {
		return nil, errors.New("PORTFOLIO_DB environment variable not set")
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite db %s", dbFile)
	}

	logger.Logger.Infof("opened sqlite db at %s", dbFile)
	return db, nil
}
