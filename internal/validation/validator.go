package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// validate общий экземпляр validator, кеширует разбор struct-тегов
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank: строка не пуста после удаления пробельных символов
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Struct validates v according to its `validate` struct tags.
func Struct(v any) error {
	return validate.Struct(v)
}
