package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/KromaTelecom/api-pedidos/internal/config"
	"github.com/KromaTelecom/api-pedidos/internal/erros"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// IDDaRota lê um id positivo das variáveis do mux.
func IDDaRota(r *http.Request, nome string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[nome], 10, 64)
	if err != nil || id == 0 {
		return 0, erros.Validacao("id_invalido", "ID inválido")
	}
	return uint(id), nil
}

// DecodeJSON decodifica o corpo e valida as tags do payload.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return erros.Validacao("json_invalido", "JSON mal formado")
	}
	return Validar(v)
}

// ResponderErro escreve o erro e registra no log apenas falhas de infraestrutura.
func ResponderErro(w http.ResponseWriter, log logrus.FieldLogger, modulo, funcao string, data any, err error) {
	if erros.TipoDe(err) == erros.TipoInterno {
		config.LogError(log, modulo, funcao, "handler", data, err)
	}
	erros.Escrever(w, err)
}
