package usecase

import (
	"sort"
	"time"

	internalEntity "github.com/DrNour/adaptive-translation-platform/internal/entity"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the ordering guarantees of
// the real queries so the usecases see the same shapes.

type fakeSubmissionRepo struct {
	rows   []internalEntity.Submission
	nextID uint
}

func (r *fakeSubmissionRepo) Create(_ *gorm.DB, submission *internalEntity.Submission) error {
	r.nextID++
	submission.ID = r.nextID
	submission.CreatedAt = time.Now()
	r.rows = append(r.rows, *submission)
	return nil
}

func (r *fakeSubmissionRepo) Save(_ *gorm.DB, submission *internalEntity.Submission) error {
	for i := range r.rows {
		if r.rows[i].ID == submission.ID {
			r.rows[i] = *submission
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSubmissionRepo) FindByID(_ *gorm.DB, id uint) (*internalEntity.Submission, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubmissionRepo) FindByLearnerID(_ *gorm.DB, learnerID string) ([]internalEntity.Submission, error) {
	var out []internalEntity.Submission
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].LearnerID == learnerID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	rows map[string]internalEntity.LearnerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{rows: map[string]internalEntity.LearnerProfile{}}
}

func (r *fakeProfileRepo) FindByLearnerID(_ *gorm.DB, learnerID string) (*internalEntity.LearnerProfile, error) {
	row, ok := r.rows[learnerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *fakeProfileRepo) Upsert(_ *gorm.DB, profile *internalEntity.LearnerProfile) error {
	r.rows[profile.LearnerID] = *profile
	return nil
}

func (r *fakeProfileRepo) FindAll(_ *gorm.DB) ([]internalEntity.LearnerProfile, error) {
	out := make([]internalEntity.LearnerProfile, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LearnerID < out[j].LearnerID })
	return out, nil
}

type fakePracticeRepo struct {
	items       []internalEntity.PracticeItem
	assignments []internalEntity.PracticeAssignment
	nextID      uint
}

func (r *fakePracticeRepo) CreateItem(_ *gorm.DB, item *internalEntity.PracticeItem) error {
	item.CreatedAt = time.Now()
	r.items = append(r.items, *item)
	return nil
}

func (r *fakePracticeRepo) FindItemByItemID(_ *gorm.DB, itemID string) (*internalEntity.PracticeItem, error) {
	for i := range r.items {
		if r.items[i].ItemID == itemID {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePracticeRepo) ListItems(_ *gorm.DB, category string) ([]internalEntity.PracticeItem, error) {
	var out []internalEntity.PracticeItem
	for _, item := range r.items {
		if category == "" || item.Category == category {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UsageCount < out[j].UsageCount })
	return out, nil
}

func (r *fakePracticeRepo) IncrementUsageCount(_ *gorm.DB, itemID string) error {
	for i := range r.items {
		if r.items[i].ItemID == itemID {
			r.items[i].UsageCount++
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePracticeRepo) CreateAssignment(_ *gorm.DB, assignment *internalEntity.PracticeAssignment) error {
	r.nextID++
	assignment.ID = r.nextID
	assignment.AssignedAt = time.Now()
	r.assignments = append(r.assignments, *assignment)
	return nil
}

func (r *fakePracticeRepo) SaveAssignment(_ *gorm.DB, assignment *internalEntity.PracticeAssignment) error {
	for i := range r.assignments {
		if r.assignments[i].ID == assignment.ID {
			r.assignments[i] = *assignment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePracticeRepo) FindAssignmentByID(_ *gorm.DB, id uint) (*internalEntity.PracticeAssignment, error) {
	for i := range r.assignments {
		if r.assignments[i].ID == id {
			assignment := r.assignments[i]
			return &assignment, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePracticeRepo) FindAssignmentsByLearnerID(_ *gorm.DB, learnerID string) ([]internalEntity.PracticeAssignment, error) {
	var out []internalEntity.PracticeAssignment
	for _, assignment := range r.assignments {
		if assignment.LearnerID == learnerID {
			out = append(out, assignment)
		}
	}
	return out, nil
}
