package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusStoreUnavailable = http.StatusServiceUnavailable
)

var (
	ErrInternalServer   = errors.New("Internal server error")
	ErrClient           = errors.New("Bad request")
	ErrNotFound         = errors.New("Resource not found")
	ErrInvalidID        = errors.New("Invalid identifier")
	ErrStoreUnavailable = errors.New("Document store is unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer:   ErrStatusInternalServer,
	ErrClient:           ErrStatusClient,
	ErrNotFound:         ErrStatusNotFound,
	ErrInvalidID:        ErrStatusClient,
	ErrStoreUnavailable: ErrStatusStoreUnavailable,
}

func GetErrorStatusCode(err error) int {
	for target, statusCode := range errorMap {
		if errors.Is(err, target) {
			return statusCode
		}
	}

	return errorMap[ErrInternalServer]
}

// IsNotFound reports whether err means the requested document does not exist,
// including identifiers that can never match one.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidID)
}
