package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/srujandivakar/DCode/common/config"
	"github.com/srujandivakar/DCode/common/db/models"
	"github.com/srujandivakar/DCode/lib/logger"
)

func NewDB(config config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if config.InMemory {
		dialector = sqlite.Open(":memory:")
	} else {
		dialector = postgres.Open(config.Dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, logger.Error("Can't open database with dsn=\"%v\" because of %v", config.Dsn, err)
	}
	for _, model := range []any{
		&models.Problem{},
		&models.User{},
		&models.Submission{},
		&models.TestCaseResult{},
		&models.ProblemSolved{},
	} {
		if err = db.AutoMigrate(model); err != nil {
			return nil, logger.Error("Can't migrate %T: %v", model, err)
		}
	}
	return db, nil
}
