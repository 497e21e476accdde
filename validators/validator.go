package validators

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.]{3,30}$`)

// CustomValidator adapts go-playground/validator to echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the validator installed as e.Validator
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("username", ValidateUsername); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

// Validate validates i and reports failures as 400 errors
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// ValidateUsername accepts 3 to 30 letters, digits, underscores or dots
func ValidateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}
