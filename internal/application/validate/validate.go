// Package validate centraliza la validación declarativa de los DTOs de entrada
// (go-playground/validator) y la traduce a errores por campo para el cliente.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invorya/inventory-lite/internal/application/dto"
)

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON, no el de Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct valida un DTO y devuelve el detalle por campo; nil si es válido.
func Struct(s any) []dto.FieldError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		return fmt.Sprintf("debe tener un mínimo de %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener un máximo de %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "uuid":
		return "debe ser un UUID válido"
	default:
		return fmt.Sprintf("no cumple la regla '%s'", fe.Tag())
	}
}
