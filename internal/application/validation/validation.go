// Package validation concentra las reglas de entrada de la API en un único validador
// (go-playground/validator) compartido por todos los handlers.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// ValidationErrors mensaje por campo JSON. errors.Is(err, domain.ErrInvalidInput) es verdadero.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

func (e ValidationErrors) Unwrap() error { return domain.ErrInvalidInput }

// Validator envuelve validator.Validate con los tags propios (dgte, dgt) y nombres JSON.
type Validator struct {
	v *validator.Validate
}

// New construye un validador listo para usar.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// decimal.Decimal se valida como su representación textual.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("dgte", decimalCompare(func(c int) bool { return c >= 0 }))
	_ = v.RegisterValidation("dgt", decimalCompare(func(c int) bool { return c > 0 }))

	return &Validator{v: v}
}

// decimalCompare compara el campo con el parámetro del tag (ej. dgt=0).
func decimalCompare(ok func(cmp int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		value, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return ok(value.Cmp(bound))
	}
}

// Struct valida s. Devuelve nil o ValidationErrors.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}
	out := make(ValidationErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "es requerido"
	case "gt", "dgt":
		return "debe ser mayor que " + fe.Param()
	case "gte", "dgte":
		return "debe ser mayor o igual que " + fe.Param()
	case "lte":
		return "debe ser menor o igual que " + fe.Param()
	case "max":
		return "no debe superar " + fe.Param() + " caracteres"
	case "datetime":
		return "debe tener el formato AAAA-MM-DD"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	}
	return "inválido (" + fe.Tag() + ")"
}

var std = New()

// Struct valida con el validador compartido del paquete.
func Struct(s any) error {
	return std.Struct(s)
}
