package validate

import (
	"errors"
	"strings"

	"iris_manager/be/biz/model/errs"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct checks `validate` tags. Any failed "required" rule is reported as
// missing; otherwise the first failure becomes a ParamError naming the field.
func Struct(s any, missing errs.Error) errs.Error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs.ParamError.SetErr(err)
	}

	for _, fe := range ve {
		if fe.Tag() == "required" {
			return missing
		}
	}
	return errs.ParamError.SetMsg(fieldError(ve[0]))
}

func fieldError(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "max":
		return field + " is too long"
	default:
		return field + " failed validation (" + fe.Tag() + ")"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
