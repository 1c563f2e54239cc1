package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

// FieldError descreve um campo inválido usando o nome do json
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: v,
	}
}

// Validate retorna nil quando a struct é válida
func (v *Validator) Validate(i any) []FieldError {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Tag: "invalid", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
			Message: msgForTag(fe),
		})
	}

	return fieldErrors
}

func (v *Validator) ValidateVar(field any, tag string) error {
	return v.validate.Var(field, tag)
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "email":
		return fmt.Sprintf("%s deve ser um email válido", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s deve ter pelo menos %s itens", field, fe.Param())
		}
		return fmt.Sprintf("%s deve ter pelo menos %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s deve ser uma URL válida", field)
	case "oneof":
		return fmt.Sprintf("%s deve ser um de [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s falhou na validação: %s", field, fe.Tag())
	}
}

var (
	globalValidator *Validator
	once            sync.Once
)

func instance() *Validator {
	once.Do(func() {
		globalValidator = New()
	})
	return globalValidator
}

// Validate valida usando a instância global
func Validate(i any) []FieldError {
	return instance().Validate(i)
}

func ValidateVar(field any, tag string) error {
	return instance().ValidateVar(field, tag)
}
