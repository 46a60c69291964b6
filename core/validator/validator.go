// Package validator wraps go-playground/validator with translated messages.
package validator

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// Validator validates structs tagged with `validate:"..."`
type Validator interface {
	Struct(s any) error
	StructCtx(ctx context.Context, s any) error
	GetValidator() *validator.Validate
}

// Option configures a Validator
type Option func(*validatorImpl)

// WithTagName reads rules from a tag other than "validate"
func WithTagName(tagName string) Option {
	return func(v *validatorImpl) {
		v.validator.SetTagName(tagName)
	}
}

// WithLanguage selects the language messages are rendered in, "en" or "zh"
func WithLanguage(lang string) Option {
	return func(v *validatorImpl) {
		v.lang = lang
	}
}

// Validate is the shared instance
var Validate = New()

type validatorImpl struct {
	validator   *validator.Validate
	translators map[string]ut.Translator
	lang        string
}

// New creates a Validator with en and zh translations registered. Field names
// in messages come from the mapstructure tag, then the json tag.
func New(opts ...Option) Validator {
	v := &validatorImpl{
		validator:   validator.New(validator.WithRequiredStructEnabled()),
		translators: make(map[string]ut.Translator, 2),
		lang:        "en",
	}
	v.validator.RegisterTagNameFunc(fieldName)

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, zh.New())
	if trans, ok := uni.GetTranslator("en"); ok {
		_ = en_translations.RegisterDefaultTranslations(v.validator, trans)
		v.translators["en"] = trans
	}
	if trans, ok := uni.GetTranslator("zh"); ok {
		_ = zh_translations.RegisterDefaultTranslations(v.validator, trans)
		v.translators["zh"] = trans
	}

	for _, opt := range opts {
		opt(v)
	}
	return v
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"mapstructure", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func (v *validatorImpl) Struct(s any) error {
	return v.StructCtx(context.Background(), s)
}

func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}
	return v.translate(v.validator.StructCtx(ctx, s))
}

func (v *validatorImpl) GetValidator() *validator.Validate {
	return v.validator
}

func (v *validatorImpl) translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	trans, ok := v.translators[v.lang]
	if !ok {
		trans = v.translators["en"]
	}

	out := &ValidationErrors{fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.fields = append(out.fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Value:   fe.Value(),
			Message: fe.Translate(trans),
		})
	}
	return out
}

// FieldError describes one failed rule
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed rule of one validation
type ValidationErrors struct {
	fields []FieldError
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.fields))
	for i, f := range e.fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Errors returns the failed rules in field order
func (e *ValidationErrors) Errors() []FieldError {
	return e.fields
}

// HasField reports whether field failed any rule
func (e *ValidationErrors) HasField(field string) bool {
	for _, f := range e.fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err carries ValidationErrors
func IsValidationError(err error) bool {
	var ve *ValidationErrors
	return errors.As(err, &ve)
}
