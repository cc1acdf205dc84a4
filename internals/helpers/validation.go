package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// nama field di pesan error = nama json
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateStruct menjalankan tag `validate` lalu mengubah hasilnya ke
// map field → pesan. nil kalau valid.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string][]string{"_": {err.Error()}}
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], messageFor(fe))
	}
	return out
}

// ValidationFailed: tag validator gagal → 422 dengan detail per field.
func ValidationFailed(c *fiber.Ctx, s any) (bool, error) {
	if errs := ValidateStruct(s); errs != nil {
		return true, JsonValidationError(c, errs)
	}
	return false, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "requerido"
	case "max":
		return "máximo " + fe.Param() + " caracteres"
	case "min":
		return "mínimo " + fe.Param() + " caracteres"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "inválido (" + fe.Tag() + ")"
	}
}
