// Package validation holds the profile draft schema: every required field has
// a presence rule and only the first failing rule, in declaration order, is
// reported.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"opiol_backend/internal/model"
	"opiol_backend/pkg/i18n"

	"github.com/go-playground/validator/v10"
)

// FieldError is the first failing rule of a draft.
type FieldError struct {
	Field     model.DraftField `json:"field"`
	MessageID string           `json:"-"`
	Message   string           `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

type Validator struct {
	validate   *validator.Validate
	translator *i18n.Translator
}

func New(translator *i18n.Translator) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, translator: translator}
}

// Validate returns d unchanged when every rule passes, otherwise the first
// failing field with its message localized to lang.
func (v *Validator) Validate(d model.Draft, lang string) (model.Draft, *FieldError) {
	if ferr := v.firstError(v.validate.Struct(d), lang); ferr != nil {
		return model.Draft{}, ferr
	}
	return d, nil
}

// ValidateInput also requires englishTestTaken to be present.
func (v *Validator) ValidateInput(in model.DraftInput, lang string) (model.Draft, *FieldError) {
	if ferr := v.firstError(v.validate.Struct(in), lang); ferr != nil {
		return model.Draft{}, ferr
	}
	return in.Draft(), nil
}

func (v *Validator) firstError(err error, lang string) *FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		// 只有传入非结构体时才会走到这里
		return &FieldError{Message: err.Error()}
	}

	first := verrs[0]
	id := MessageID(model.DraftField(first.Field()))
	return &FieldError{
		Field:     model.DraftField(first.Field()),
		MessageID: id,
		Message:   v.translator.T(lang, id),
	}
}

func MessageID(field model.DraftField) string {
	return "validation_" + string(field)
}
