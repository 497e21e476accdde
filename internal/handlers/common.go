package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var kindStatus = map[errs.Kind]int{
	errs.Unauthorized: http.StatusForbidden,
	errs.NotFound:     http.StatusNotFound,
	errs.Conflict:     http.StatusConflict,
	errs.Invalid:      http.StatusBadRequest,
}

// toHTTPError maps a store failure onto an HTTP error and counts the rejection
func toHTTPError(m *metrics.Metrics, err error) error {
	kind := errs.KindOf(err)
	if m != nil {
		m.Rejections.WithLabelValues(kind.String()).Inc()
	}

	status, ok := kindStatus[kind]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
	}
	var e *errs.Error
	msg := err.Error()
	if errors.As(err, &e) {
		msg = e.Message
	}
	return echo.NewHTTPError(status, msg)
}

// caller returns the identity attached by the auth middleware
func caller(c echo.Context) string {
	return middleware.Identity(c)
}

// paramID parses a numeric path parameter
func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// pageParams reads page and page_size. Missing values take the defaults;
// negative or malformed values are rejected.
func pageParams(c echo.Context) (page, pageSize int, err error) {
	page, pageSize = 0, DefaultPageSize

	if raw := c.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page must be a non-negative integer")
		}
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil || pageSize < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page_size must be a non-negative integer")
		}
	}
	return page, min(pageSize, MaxPageSize), nil
}

func success(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

func successPage(c echo.Context, key string, items interface{}, page, pageSize int) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{key: items},
		"meta": echo.Map{
			"page":      page,
			"page_size": pageSize,
		},
	})
}

// bindAndValidate binds the request body into req and runs the validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return c.Validate(req)
}
