package database

import (
	"github.com/DrNour/adaptive-translation-platform/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Submission{},
		&entity.LearnerProfile{},
		&entity.PracticeItem{},
		&entity.PracticeAssignment{},
	)
	return err
}
