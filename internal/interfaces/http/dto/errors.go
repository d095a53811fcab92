package dto

import (
	"errors"
	"net/http"

	"github.com/erp/erpapi/internal/domain/shared"
)

// ServerErrorMessage is the detail of every 500 response. The cause is logged, never returned.
const ServerErrorMessage = "A server error occurred."

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:         http.StatusNotFound,
	shared.CodeInvalidPage:      http.StatusNotFound,
	shared.CodeConflict:         http.StatusConflict,
	shared.CodeMethodNotAllowed: http.StatusMethodNotAllowed,
	shared.CodeInvalidState:     http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for a given error code.
// Returns 500 Internal Server Error for unknown codes.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Detail is the body of every non-validation error response.
type Detail struct {
	Detail string `json:"detail" example:"Not found."`
}

// ValidationErrors is the body of a 400 response: messages keyed by field name,
// with non_field_errors for messages that concern the whole request.
type ValidationErrors map[string][]string

// ErrorBody converts err into a status code and response body. The returned
// bool is true when the error was not a known domain error and should be
// logged as a server fault.
func ErrorBody(err error) (int, any, bool) {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, ValidationErrors(verr.Fields), false
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := GetHTTPStatus(domainErr.Code)
		if status == http.StatusInternalServerError {
			return status, Detail{Detail: ServerErrorMessage}, true
		}
		return status, Detail{Detail: domainErr.Message}, false
	}

	return http.StatusInternalServerError, Detail{Detail: ServerErrorMessage}, true
}
