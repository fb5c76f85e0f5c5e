package repository

import (
	"github.com/DrNour/adaptive-translation-platform/internal/entity"
	"gorm.io/gorm"
)

type (
	SubmissionRepository interface {
		Create(db *gorm.DB, submission *entity.Submission) error
		Save(db *gorm.DB, submission *entity.Submission) error
		FindByID(db *gorm.DB, id uint) (*entity.Submission, error)
		FindByLearnerID(db *gorm.DB, learnerID string) ([]entity.Submission, error)
	}

	submissionRepository struct {
		db *gorm.DB
	}
)

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(db *gorm.DB, submission *entity.Submission) error {
	if db == nil {
		db = r.db
	}
	return db.Create(submission).Error
}

func (r *submissionRepository) Save(db *gorm.DB, submission *entity.Submission) error {
	if db == nil {
		db = r.db
	}
	return db.Save(submission).Error
}

func (r *submissionRepository) FindByID(db *gorm.DB, id uint) (*entity.Submission, error) {
	if db == nil {
		db = r.db
	}
	var submission entity.Submission
	err := db.First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByLearnerID(db *gorm.DB, learnerID string) ([]entity.Submission, error) {
	if db == nil {
		db = r.db
	}
	var submissions []entity.Submission
	err := db.Where("learner_id = ?", learnerID).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}
