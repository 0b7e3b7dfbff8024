package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	translations "github.com/go-playground/validator/v10/translations/zh"
	"go.uber.org/multierr"
)

// Validator matches gin's binding.StructValidator
type Validator interface {
	ValidateStruct(obj interface{}) error
	Engine() interface{}
}

// New validator reading `binding` tags, failures are translated to chinese
// and fields are named after their `label` tag when present.
func New() (*defaultValidator, error) {
	v := &defaultValidator{Validate: validator.New()}
	v.Validate.SetTagName("binding")
	v.Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	v.translator, _ = ut.New(zh.New()).GetTranslator("zh")
	if err := translations.RegisterDefaultTranslations(v.Validate, v.translator); err != nil {
		return nil, err
	}
	return v, nil
}

type defaultValidator struct {
	Validate   *validator.Validate
	translator ut.Translator
}

// ValidateStruct receives any kind of type, but only performed struct or pointer to struct type.
func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	err := v.defaultValidateStruct(obj)
	if err == nil {
		return nil
	}
	return v.Translate(err)
}

// Translate turns validator.ValidationErrors into one error per failed field
func (v *defaultValidator) Translate(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	var errs error
	for _, fieldErr := range vErrs {
		errs = multierr.Append(errs, errors.New(fieldErr.Translate(v.translator)))
	}
	return errs
}

// Engine returns the underlying validator engine which powers the default
// Validator instance. This is useful if you want to register custom validations
// or struct level validations.
func (v *defaultValidator) Engine() interface{} {
	return v.Validate
}

func (v *defaultValidator) defaultValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() { // nolint:exhaustive
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.defaultValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		return v.Validate.Struct(obj)
	case reflect.Slice, reflect.Array:
		count := value.Len()
		var errs error
		for i := 0; i < count; i++ {
			errs = multierr.Append(errs, v.defaultValidateStruct(value.Index(i).Interface()))
		}
		return errs
	default:
		return nil
	}
}

// RegisterValidation adds a custom tag, text is its chinese message where
// {0} is the field name.
func RegisterValidation(v Validator, tag string, fn validator.Func, text string) error {
	dv, ok := v.(*defaultValidator)
	if !ok {
		validate, ok := v.Engine().(*validator.Validate)
		if !ok {
			return nil
		}
		return validate.RegisterValidation(tag, fn)
	}
	if err := dv.Validate.RegisterValidation(tag, fn); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return dv.Validate.RegisterTranslation(tag, dv.translator,
		func(trans ut.Translator) error {
			return trans.Add(tag, text, true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			msg, err := trans.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		})
}
