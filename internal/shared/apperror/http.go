package apperror

import "errors"

// HTTPError is the transport-level view of a failure, resolved once at the
// handler boundary.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details string
}

// ToHTTP maps any error to its HTTP rendering. Untyped errors (store
// failures, connectivity loss) collapse to a 500 with a generic message;
// the original error text travels in Details for dev-mode responses.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		details := ""
		if appErr.Err != nil {
			details = appErr.Err.Error()
		}
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
		Details: err.Error(),
	}
}
