// Package envelope writes and reads the {success, data, error} body every API
// route answers with.
package envelope

import (
	"database/sql"
	"errors"
	"net/http"

	"expansion/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func Fail(c echo.Context, status int, err error) error {
	return c.JSON(status, Response{Success: false, Error: err.Error()})
}

// Error answers with the status StatusOf picks for err.
func Error(c echo.Context, err error) error {
	return Fail(c, StatusOf(err), err)
}

func StatusOf(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidMonthKey),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrDuplicateBlock):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPlanAlreadyActive), errors.Is(err, domain.ErrCityInTwoBlocks):
		return http.StatusConflict
	case errors.Is(err, sql.ErrNoRows),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrCityNotFound),
		errors.Is(err, domain.ErrPlanNotFound),
		errors.Is(err, domain.ErrPhaseNotFound),
		errors.Is(err, domain.ErrActionNotFound),
		errors.Is(err, domain.ErrBlockNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
