package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindActive(ctx context.Context, search string, limit, offset int) ([]Employee, error)
	CountActive(ctx context.Context, search string) (int64, error)
	FindActiveByID(ctx context.Context, id int64) (*Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	SoftDelete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

// activeScope narrows a query to visible rows, optionally filtered by a
// case-insensitive substring over the four searchable columns.
func activeScope(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("is_active = ?", true)
		if search != "" {
			pattern := "%" + search + "%"
			db = db.Where(
				"(name ILIKE ? OR email ILIKE ? OR position ILIKE ? OR department ILIKE ?)",
				pattern, pattern, pattern, pattern,
			)
		}
		return db
	}
}

func (r *repository) FindActive(ctx context.Context, search string, limit, offset int) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(activeScope(search)).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&empls).Error
	return empls, err
}

func (r *repository) CountActive(ctx context.Context, search string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(activeScope(search)).
		Count(&count).Error
	return count, err
}

func (r *repository) FindActiveByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "id = ? AND is_active = ?", id, true).Error
	return &empl, err
}

// FindByID reads regardless of the active flag; delete needs it to tell
// "not found" apart from "already inactive".
func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

// EmailTaken checks all rows, active or not. excludeID 0 means no
// exclusion (create); a positive id skips the row being updated.
func (r *repository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	return r.UpdateFields(ctx, id, map[string]any{"is_active": false})
}
