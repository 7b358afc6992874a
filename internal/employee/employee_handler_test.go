package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"employee-dashboard/internal/employee"
	employeeerrors "employee-dashboard/internal/employee/errors"
	"employee-dashboard/internal/shared/apperror"
	"employee-dashboard/internal/shared/contextutil"
)

type fakeEmployeeService struct {
	ListFn    func(ctx context.Context, page, limit int, search string) ([]employee.EmployeeResponse, int64, error)
	GetByIDFn func(ctx context.Context, id int64) (employee.EmployeeResponse, error)
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeEmployeeService) List(ctx context.Context, page, limit int, search string) ([]employee.EmployeeResponse, int64, error) {
	return f.ListFn(ctx, page, limit, search)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func setupHandlerTest() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func newTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestEmployeeHandler_Create(t *testing.T) {
	setupHandlerTest()

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.Name)
				return employee.EmployeeResponse{
					ID:       1,
					Name:     req.Name,
					Email:    req.Email,
					IsActive: true,
				}, nil
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodPost, "/employees", `{"name":"John Doe","email":"john@acme.io"}`)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), "Employee created successfully")
		assert.Contains(t, w.Body.String(), "John Doe")
	})

	t.Run("missing name is a 400 before the service runs", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodPost, "/employees", `{"email":"john@acme.io"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"error":true`)
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailExists
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodPost, "/employees", `{"name":"Jane","email":"jane@acme.io"}`)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Email already exists")
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	setupHandlerTest()

	t.Run("returns data with pagination metadata", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, page, limit int, search string) ([]employee.EmployeeResponse, int64, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, limit)
				assert.Equal(t, "acme", search)
				return []employee.EmployeeResponse{{ID: 3, Name: "A"}}, 11, nil
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodGet, "/employees?page=2&limit=5&search=acme", "")

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success    bool `json:"success"`
			Data       []employee.EmployeeResponse
			Pagination struct {
				CurrentPage  int   `json:"currentPage"`
				TotalPages   int   `json:"totalPages"`
				TotalRecords int64 `json:"totalRecords"`
				Limit        int   `json:"limit"`
			} `json:"pagination"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Len(t, body.Data, 1)
		assert.Equal(t, 2, body.Pagination.CurrentPage)
		assert.Equal(t, 3, body.Pagination.TotalPages)
		assert.Equal(t, int64(11), body.Pagination.TotalRecords)
		assert.Equal(t, 5, body.Pagination.Limit)
	})

	t.Run("non-positive limit is clamped to the default", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, page, limit int, search string) ([]employee.EmployeeResponse, int64, error) {
				assert.Equal(t, 1, page)
				assert.Equal(t, 10, limit)
				return nil, 0, nil
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodGet, "/employees?page=0&limit=-3", "")

		h.List(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store failure hides details outside development", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, page, limit int, search string) ([]employee.EmployeeResponse, int64, error) {
				return nil, 0, errors.New("connection refused")
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodGet, "/employees", "")

		h.List(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("store failure exposes details in development", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, page, limit int, search string) ([]employee.EmployeeResponse, int64, error) {
				return nil, 0, errors.New("connection refused")
			},
		}

		h := employee.NewHandler(svc, true)
		c, w := newTestContext(t, http.MethodGet, "/employees", "")

		h.List(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	setupHandlerTest()

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(7), id)
				return employee.EmployeeResponse{ID: 7, Name: "Jane"}, nil
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodGet, "/employees/7", "")
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Jane")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodGet, "/employees/99", "")
		c.Params = gin.Params{{Key: "id", Value: "99"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodGet, "/employees/abc", "")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid employee ID")
	})

	t.Run("failures log through the request-scoped logger", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		scoped := zap.New(core).With(zap.String("request_id", "rid-9"))

		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodGet, "/employees/99", "")
		c.Params = gin.Params{{Key: "id", Value: "99"}}
		c.Request = c.Request.WithContext(contextutil.WithLogger(c.Request.Context(), scoped))

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "employee request failed", entries[0].Message)
		assert.Equal(t, "rid-9", entries[0].ContextMap()["request_id"])
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	setupHandlerTest()

	t.Run("partial body passes presence flags through", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(7), id)
				assert.True(t, req.HasPosition)
				assert.False(t, req.HasDepartment)
				assert.Empty(t, req.Name)
				return employee.EmployeeResponse{ID: 7}, nil
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodPut, "/employees/7", `{"position":"Manager"}`)
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee updated successfully")
	})

	t.Run("empty body is a 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrNothingToUpdate
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodPut, "/employees/7", `{}`)
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No fields to update")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	setupHandlerTest()

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(7), id)
				return nil
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodDelete, "/employees/7", "")
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee deleted successfully")
	})

	t.Run("already deleted is a 400, not a 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				return employeeerrors.ErrEmployeeAlreadyDeleted
			},
		}

		h := employee.NewHandler(svc, false)
		c, w := newTestContext(t, http.MethodDelete, "/employees/7", "")
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		h.Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Employee already deleted")
	})
}
