package employee

import (
	"encoding/json"
	"time"
)

type CreateEmployeeRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	Salary     *float64 `json:"salary" binding:"omitempty,gte=0"`
}

// UpdateEmployeeRequest carries a partial update. Name and Email apply
// only when non-empty; Position, Department and Salary apply whenever
// their JSON key was present, including an explicit null (which clears
// the column). UnmarshalJSON records key presence so the service can
// tell "omitted" from "set to null".
type UpdateEmployeeRequest struct {
	Name       string
	Email      string
	Position   *string
	Department *string
	Salary     *float64

	HasPosition   bool
	HasDepartment bool
	HasSalary     bool
}

func (r *UpdateEmployeeRequest) UnmarshalJSON(data []byte) error {
	type fields struct {
		Name       string   `json:"name"`
		Email      string   `json:"email"`
		Position   *string  `json:"position"`
		Department *string  `json:"department"`
		Salary     *float64 `json:"salary"`
	}

	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = UpdateEmployeeRequest{
		Name:       f.Name,
		Email:      f.Email,
		Position:   f.Position,
		Department: f.Department,
		Salary:     f.Salary,
	}
	_, r.HasPosition = keys["position"]
	_, r.HasDepartment = keys["department"]
	_, r.HasSalary = keys["salary"]

	return nil
}

type EmployeeResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Position   *string   `json:"position"`
	Department *string   `json:"department"`
	Salary     *float64  `json:"salary"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
