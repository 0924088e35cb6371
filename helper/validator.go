package helper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// NewValidator returns the validator shared by services and handlers, with
// english messages and the custom "slug" rule registered.
func NewValidator() (*validator.Validate, ut.Translator, error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(fieldName)

	if err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsValidSlug(fl.Field().String())
	}); err != nil {
		return nil, nil, fmt.Errorf("register slug rule: %w", err)
	}
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("register translations: %w", err)
	}
	err := validate.RegisterTranslation("slug", trans,
		func(ut ut.Translator) error {
			return ut.Add("slug", "{0} must contain only lowercase letters, digits and single hyphens", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("slug", fe.Field())
			return t
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("register slug translation: %w", err)
	}

	return validate, trans, nil
}

// fieldName reports a field under the name the caller sent it as: the json
// key for bodies, the form key for query strings.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}
