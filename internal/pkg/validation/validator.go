// Package validation valida payloads de entrada a partir das tags `validate`
// das structs de domínio, devolvendo sempre um apperror.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "partstock/internal/errors"
)

// Validator encapsula o validator.Validate configurado para usar os nomes JSON dos campos.
type Validator struct {
	validate *validator.Validate
}

// New cria o Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct valida s e traduz a primeira falha em uma mensagem legível.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewValidationError(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperror.NewValidationError(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:] // remove o nome da struct raiz
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("o campo '%s' é obrigatório", field)
	case "uuid":
		return fmt.Sprintf("o campo '%s' deve ser um UUID válido", field)
	case "email":
		return fmt.Sprintf("o campo '%s' deve ser um e-mail válido", field)
	case "oneof":
		return fmt.Sprintf("o campo '%s' deve ser um de [%s]", field, fe.Param())
	case "gte":
		return fmt.Sprintf("o campo '%s' deve ser maior ou igual a %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("o campo '%s' deve ser maior que %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("o campo '%s' deve ter no mínimo %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("o campo '%s' deve ter no máximo %s", field, fe.Param())
	default:
		return fmt.Sprintf("o campo '%s' é inválido (%s)", field, fe.Tag())
	}
}
