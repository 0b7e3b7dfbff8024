package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phoneCompile = regexp.MustCompile(`^1[3-9]\d{9}$`)

// Phone 11位手机号码，1开头，第二位3-9
func Phone(f1 validator.FieldLevel) bool {
	valid, ok := f1.Field().Interface().(string)
	if !ok {
		return false
	}
	return phoneCompile.MatchString(valid)
}

// OneOf accepts exactly one of values, unlike the builtin oneof the values
// may contain spaces or non ascii text.
func OneOf(values ...string) validator.Func {
	allowed := make(map[string]struct{}, len(values))
	for _, value := range values {
		allowed[value] = struct{}{}
	}
	return func(f1 validator.FieldLevel) bool {
		valid, ok := f1.Field().Interface().(string)
		if !ok {
			return false
		}
		_, found := allowed[valid]
		return found
	}
}
