package repository

import (
	"github.com/DrNour/adaptive-translation-platform/internal/entity"
	"gorm.io/gorm"
)

type (
	LearnerProfileRepository interface {
		FindByLearnerID(db *gorm.DB, learnerID string) (*entity.LearnerProfile, error)
		Upsert(db *gorm.DB, profile *entity.LearnerProfile) error
		FindAll(db *gorm.DB) ([]entity.LearnerProfile, error)
	}

	learnerProfileRepository struct {
		db *gorm.DB
	}
)

func NewLearnerProfileRepository(db *gorm.DB) LearnerProfileRepository {
	return &learnerProfileRepository{db: db}
}

func (r *learnerProfileRepository) FindByLearnerID(db *gorm.DB, learnerID string) (*entity.LearnerProfile, error) {
	if db == nil {
		db = r.db
	}
	var profile entity.LearnerProfile
	err := db.Where("learner_id = ?", learnerID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *learnerProfileRepository) Upsert(db *gorm.DB, profile *entity.LearnerProfile) error {
	if db == nil {
		db = r.db
	}
	return db.Where("learner_id = ?", profile.LearnerID).Assign(profile).FirstOrCreate(profile).Error
}

func (r *learnerProfileRepository) FindAll(db *gorm.DB) ([]entity.LearnerProfile, error) {
	if db == nil {
		db = r.db
	}
	var profiles []entity.LearnerProfile
	err := db.Order("learner_id ASC").Find(&profiles).Error
	return profiles, err
}
