package utils

import (
	"errors"
	"regexp"
	"telecare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var (
	validate    *validator.Validate
	clockRegexp = regexp.MustCompile(constvars.RegexClock)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("role_name", validateRoleName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	if len(param) > 64 {
		return errors.New("parameter is too long")
	}
	return nil
}

func validateClock(fl validator.FieldLevel) bool {
	return clockRegexp.MatchString(fl.Field().String())
}

func validateRoleName(fl validator.FieldLevel) bool {
	return constvars.RoleName(fl.Field().String()).IsValid()
}
