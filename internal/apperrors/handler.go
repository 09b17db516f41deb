package apperrors

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders AppError values as {message, details?} with the
// embedded status code. Anything else is logged and surfaced as a generic 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		body := echo.Map{"message": appErr.Message}
		if appErr.Err != nil {
			body["details"] = appErr.Err.Error()
		}
		if jsonErr := c.JSON(appErr.Code, body); jsonErr != nil {
			log.Println("Error writing error response:", jsonErr)
		}
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if jsonErr := c.JSON(httpErr.Code, echo.Map{"message": httpErr.Message}); jsonErr != nil {
			log.Println("Error writing error response:", jsonErr)
		}
		return
	}

	log.Println("Unexpected error:", err)
	if jsonErr := c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"}); jsonErr != nil {
		log.Println("Error writing error response:", jsonErr)
	}
}
