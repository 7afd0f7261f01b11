package infra

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/customer-templates/internal/errors"
	"github.com/umalmyha/customer-templates/internal/validation"
)

// HTTPErrorHandler converts error returned by handler to http error with corresponding code
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		e.DefaultHTTPErrorHandler(httpError(err, c), c)
	}
}

func httpError(err error, c echo.Context) *echo.HTTPError {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code >= http.StatusInternalServerError {
			logrus.Errorf("error occurred on %s %s - %v", c.Request().Method, c.Path(), err)
		}
		return echoErr
	}

	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return echo.NewHTTPError(http.StatusBadRequest, pldErr)
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
	}

	logrus.Errorf("error occurred on %s %s - %v", c.Request().Method, c.Path(), err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}
