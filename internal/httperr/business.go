package httperr

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// BusinessError carries a stable string code from the use-case layer up
// to the handlers, which map it onto an HTTP status.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, if err is one.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// WriteBusiness maps a business error onto the response by code
// convention: *_not_found -> 404, *_exists / *_overlap -> 409,
// everything else -> 400. Non-business errors become a 500.
func WriteBusiness(c *gin.Context, err error, message string) {
	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, "internal_error", message)
		return
	}

	switch {
	case strings.HasSuffix(code, "_not_found"):
		NotFound(c, code, message)
	case strings.HasSuffix(code, "_exists"), strings.HasSuffix(code, "_overlap"):
		Conflict(c, code, message)
	default:
		BadRequest(c, code, message)
	}
}
