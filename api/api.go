package api

import (
	"net/http"

	"github.com/puoklam/lab-app-backend/lifecycle"
)

const DateLayout = "2006-01-02"

// Status maps engine error kinds to HTTP status codes. Unrecognized errors
// are treated as internal.
func Status(err error) int {
	switch lifecycle.KindOf(err) {
	case lifecycle.KindValidation:
		return http.StatusBadRequest
	case lifecycle.KindAuthorization:
		return http.StatusForbidden
	case lifecycle.KindConflict:
		return http.StatusConflict
	case lifecycle.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, err error) {
	code := Status(err)
	w.WriteHeader(code)
	if code != http.StatusInternalServerError {
		w.Write([]byte(err.Error()))
	}
}
