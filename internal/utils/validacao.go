package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/KromaTelecom/api-pedidos/internal/erros"
)

var (
	validadorOnce sync.Once
	validador     *validator.Validate
)

func getValidador() *validator.Validate {
	validadorOnce.Do(func() {
		validador = validator.New(validator.WithRequiredStructEnabled())
		validador.RegisterTagNameFunc(func(f reflect.StructField) string {
			nome := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if nome == "-" {
				return ""
			}
			return nome
		})
	})
	return validador
}

// Validar aplica as tags `validate` do payload e devolve um erro de validação legível.
func Validar(v any) error {
	err := getValidador().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return erros.Interno(err)
	}
	campos := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		campos = append(campos, fmt.Sprintf("'%s' (%s)", fe.Field(), fe.Tag()))
	}
	return erros.Validacao("payload_invalido", "campos inválidos: "+strings.Join(campos, ", "))
}
