package employee

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	employeeerrors "employee-dashboard/internal/employee/errors"
	"employee-dashboard/internal/shared/contextutil"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, page, limit int, search string) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// List returns the requested page of active rows, newest id first, plus
// the total match count so the handler can derive pagination metadata.
func (s *service) List(
	ctx context.Context,
	page, limit int,
	search string,
) ([]EmployeeResponse, int64, error) {
	s.logger.Debug("list employees requested",
		zap.Int("page", page),
		zap.Int("limit", limit),
		zap.String("search", search),
	)

	search = strings.TrimSpace(search)
	offset := (page - 1) * limit

	total, err := s.repo.CountActive(ctx, search)
	if err != nil {
		s.logger.Error("list employees count failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	empls, err := s.repo.FindActive(ctx, search, limit, offset)
	if err != nil {
		s.logger.Error("list employees fetch failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(empls), total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))

	empl, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return EmployeeResponse{}, employeeerrors.ErrMissingRequiredFields
	}
	if req.Salary != nil && *req.Salary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	empl := &Employee{
		Name:       name,
		Email:      email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		IsActive:   true,
	}

	// The duplicate check spans all rows, including soft-deleted ones,
	// so a retired employee's email stays reserved. The check and the
	// insert share one transaction; the unique index backstops the
	// remaining concurrent-create window.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		taken, err := qtx.EmailTaken(ctx, email, 0)
		if err != nil {
			return err
		}
		if taken {
			return employeeerrors.ErrEmailExists
		}

		return qtx.Create(ctx, empl)
	})
	if err != nil {
		s.logger.Warn("create employee failed",
			zap.String("request_id", rid),
			zap.String("email", email),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id int64,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	if req.HasSalary && req.Salary != nil && *req.Salary < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeSalary
	}

	var updated *Employee

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindActiveByID(ctx, id); err != nil {
			return err
		}

		// Name and email only move on a non-empty value; the nullable
		// fields move whenever their key was present in the request.
		updates := map[string]any{}
		if name := strings.TrimSpace(req.Name); name != "" {
			updates["name"] = name
		}
		if email := strings.TrimSpace(req.Email); email != "" {
			taken, err := qtx.EmailTaken(ctx, email, id)
			if err != nil {
				return err
			}
			if taken {
				return employeeerrors.ErrEmailExists
			}
			updates["email"] = email
		}
		if req.HasPosition {
			updates["position"] = req.Position
		}
		if req.HasDepartment {
			updates["department"] = req.Department
		}
		if req.HasSalary {
			updates["salary"] = req.Salary
		}

		if len(updates) == 0 {
			return employeeerrors.ErrNothingToUpdate
		}

		if err := qtx.UpdateFields(ctx, id, updates); err != nil {
			return err
		}

		empl, err := qtx.FindActiveByID(ctx, id)
		if err != nil {
			return err
		}
		updated = empl
		return nil
	})
	if err != nil {
		s.logger.Warn("update employee failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		// The existence check ignores is_active: a missing row is 404,
		// an inactive one is a distinct "already deleted" condition.
		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !empl.IsActive {
			return employeeerrors.ErrEmployeeAlreadyDeleted
		}

		return qtx.SoftDelete(ctx, id)
	})
	if err != nil {
		s.logger.Warn("delete employee failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         empl.ID,
		Name:       empl.Name,
		Email:      empl.Email,
		Position:   empl.Position,
		Department: empl.Department,
		Salary:     empl.Salary,
		IsActive:   empl.IsActive,
		CreatedAt:  empl.CreatedAt,
		UpdatedAt:  empl.UpdatedAt,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
