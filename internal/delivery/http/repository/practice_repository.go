package repository

import (
	"github.com/DrNour/adaptive-translation-platform/internal/entity"
	"gorm.io/gorm"
)

type (
	PracticeRepository interface {
		// Practice bank
		CreateItem(db *gorm.DB, item *entity.PracticeItem) error
		FindItemByItemID(db *gorm.DB, itemID string) (*entity.PracticeItem, error)
		ListItems(db *gorm.DB, category string) ([]entity.PracticeItem, error)
		IncrementUsageCount(db *gorm.DB, itemID string) error

		// Assignments
		CreateAssignment(db *gorm.DB, assignment *entity.PracticeAssignment) error
		SaveAssignment(db *gorm.DB, assignment *entity.PracticeAssignment) error
		FindAssignmentByID(db *gorm.DB, id uint) (*entity.PracticeAssignment, error)
		FindAssignmentsByLearnerID(db *gorm.DB, learnerID string) ([]entity.PracticeAssignment, error)
	}

	practiceRepository struct {
		db *gorm.DB
	}
)

func NewPracticeRepository(db *gorm.DB) PracticeRepository {
	return &practiceRepository{db: db}
}

func (r *practiceRepository) CreateItem(db *gorm.DB, item *entity.PracticeItem) error {
	if db == nil {
		db = r.db
	}
	return db.Create(item).Error
}

func (r *practiceRepository) FindItemByItemID(db *gorm.DB, itemID string) (*entity.PracticeItem, error) {
	if db == nil {
		db = r.db
	}
	var item entity.PracticeItem
	err := db.Where("item_id = ?", itemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns bank items, least-recently-assigned first. An empty
// category lists the whole bank.
func (r *practiceRepository) ListItems(db *gorm.DB, category string) ([]entity.PracticeItem, error) {
	if db == nil {
		db = r.db
	}
	query := db.Order("usage_count ASC, created_at ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []entity.PracticeItem
	err := query.Find(&items).Error
	return items, err
}

func (r *practiceRepository) IncrementUsageCount(db *gorm.DB, itemID string) error {
	if db == nil {
		db = r.db
	}
	return db.Model(&entity.PracticeItem{}).
		Where("item_id = ?", itemID).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error
}

func (r *practiceRepository) CreateAssignment(db *gorm.DB, assignment *entity.PracticeAssignment) error {
	if db == nil {
		db = r.db
	}
	return db.Create(assignment).Error
}

func (r *practiceRepository) SaveAssignment(db *gorm.DB, assignment *entity.PracticeAssignment) error {
	if db == nil {
		db = r.db
	}
	return db.Save(assignment).Error
}

func (r *practiceRepository) FindAssignmentByID(db *gorm.DB, id uint) (*entity.PracticeAssignment, error) {
	if db == nil {
		db = r.db
	}
	var assignment entity.PracticeAssignment
	err := db.First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *practiceRepository) FindAssignmentsByLearnerID(db *gorm.DB, learnerID string) ([]entity.PracticeAssignment, error) {
	if db == nil {
		db = r.db
	}
	var assignments []entity.PracticeAssignment
	err := db.Where("learner_id = ?", learnerID).Order("assigned_at ASC").Find(&assignments).Error
	return assignments, err
}
