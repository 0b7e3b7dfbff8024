package model

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"usercenter/pkg/validator"
)

// NewValidator returns the translated validator knowing the user field tags,
// both the request forms and the seeded records are checked with it
func NewValidator() (validator.Validator, error) {
	v, err := validator.New()
	if err != nil {
		return nil, err
	}
	for _, rule := range []struct {
		tag  string
		fn   playground.Func
		text string
	}{
		{tag: "notblank", fn: validators.NotBlank, text: "{0}不能为空"},
		{tag: "phone", fn: validator.Phone, text: "{0}格式不正确"},
		{tag: "department", fn: validator.OneOf(Departments...), text: "{0}必须是有效的部门"},
	} {
		if err = validator.RegisterValidation(v, rule.tag, rule.fn, rule.text); err != nil {
			return nil, err
		}
	}
	return v, nil
}
