package helpers

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var translator ut.Translator

func init() {
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
}

// GetErrorMessages flattens validation failures into a single readable
// string, one clause per failed field.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	en_translations.RegisterDefaultTranslations(validate, translator)

	validationErrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return errs.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, e.Translate(translator))
	}
	return strings.Join(messages, ", ")
}
