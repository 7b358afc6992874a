package employee

import "time"

// Employee is the single persisted entity. Rows are never physically
// removed; delete flips IsActive and the row keeps occupying the id and
// email uniqueness space.
type Employee struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Email      string `gorm:"uniqueIndex:uq_employee_email;not null"`
	Position   *string
	Department *string
	Salary     *float64 `gorm:"type:numeric(12,2)"`
	IsActive   bool     `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Employee) TableName() string {
	return "employees"
}
