package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"nutrivision-backend/domain"
)

var Validate *validator.Validate

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func InitValidator() {
	Validate = validator.New()

	// Report json field names so validation errors match the wire format.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"email_basic": validateEmailBasic,
		"decimal2":    fixedDecimal(8, 2),
		"decimal3":    fixedDecimal(8, 3),
		"decimal4":    fixedDecimal(5, 4),
	}
	for tag, fn := range rules {
		if err := Validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

func validateEmailBasic(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// fixedDecimal limits a quantity to what its database column can represent,
// e.g. decimal(8,2) nutrient amounts or decimal(5,4) scores: at most places
// fractional digits and digits-places integer digits.
func fixedDecimal(digits, places int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)
		s = strings.TrimPrefix(s, "-")

		intLen := len(s)
		fracLen := 0
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			intLen = dot
			fracLen = len(s) - dot - 1
		}
		return intLen <= digits-places && fracLen <= places
	}
}

// TranslateValidationError converts a validator failure into the domain's
// ValidationError, naming the first offending field. Other errors pass
// through unchanged.
func TranslateValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}
	fe := fieldErrors[0]
	constraint := fe.Tag()
	if fe.Param() != "" {
		constraint += "=" + fe.Param()
	}
	return &domain.ValidationError{Field: fe.Field(), Constraint: constraint}
}
