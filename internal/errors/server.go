package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

var defaultErrorMessage = http.StatusText(http.StatusInternalServerError)

// ProcessServerError tries to retrieve from given error it's code, message and some details.
// Errors that are not *echo.HTTPError are internal ones.
func ProcessServerError(err error) (code int, msg string, details string) {
	if errHTTP := new(echo.HTTPError); errors.As(err, &errHTTP) {
		return errHTTP.Code, fmt.Sprint(errHTTP.Message), errHTTP.Error()
	}

	return http.StatusInternalServerError, defaultErrorMessage, err.Error()
}
