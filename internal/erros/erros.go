// Package erros define a taxonomia de erros de negócio da API e o mapeamento para HTTP.
package erros

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Tipo classifica um erro para o chamador decidir a remediação.
type Tipo string

const (
	TipoValidacao     Tipo = "validation"
	TipoConflito      Tipo = "conflict"
	TipoProibido      Tipo = "forbidden"
	TipoNaoEncontrado Tipo = "not_found"
	TipoInterno       Tipo = "internal"
)

// Erro carrega o tipo, um código estável e a mensagem exibida ao usuário.
type Erro struct {
	Tipo     Tipo
	Codigo   string
	Mensagem string
	Causa    error
}

func (e *Erro) Error() string {
	if e.Causa != nil {
		return e.Mensagem + ": " + e.Causa.Error()
	}
	return e.Mensagem
}

func (e *Erro) Unwrap() error { return e.Causa }

func novo(tipo Tipo, codigo, mensagem string) *Erro {
	return &Erro{Tipo: tipo, Codigo: codigo, Mensagem: mensagem}
}

func Validacao(codigo, mensagem string) *Erro { return novo(TipoValidacao, codigo, mensagem) }

func Conflito(codigo, mensagem string) *Erro { return novo(TipoConflito, codigo, mensagem) }

func Proibido(codigo, mensagem string) *Erro { return novo(TipoProibido, codigo, mensagem) }

func NaoEncontrado(codigo, mensagem string) *Erro { return novo(TipoNaoEncontrado, codigo, mensagem) }

// Interno embrulha falhas de infraestrutura (banco, rede) que não são regra de negócio.
func Interno(err error) *Erro {
	return &Erro{Tipo: TipoInterno, Codigo: "erro_interno", Mensagem: "erro interno", Causa: err}
}

// TipoDe devolve o tipo de err; qualquer erro fora da taxonomia é interno.
func TipoDe(err error) Tipo {
	var e *Erro
	if errors.As(err, &e) {
		return e.Tipo
	}
	return TipoInterno
}

// E verifica se err pertence ao tipo informado.
func E(err error, tipo Tipo) bool {
	return err != nil && TipoDe(err) == tipo
}

// Status converte o tipo do erro em status HTTP.
func Status(err error) int {
	switch TipoDe(err) {
	case TipoValidacao:
		return http.StatusBadRequest
	case TipoConflito:
		return http.StatusConflict
	case TipoProibido:
		return http.StatusForbidden
	case TipoNaoEncontrado:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type corpoErro struct {
	Error   Tipo   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Escrever responde o erro em JSON. Erros internos nunca expõem a causa.
func Escrever(w http.ResponseWriter, err error) {
	corpo := corpoErro{Error: TipoInterno, Code: "erro_interno", Message: "erro interno"}
	var e *Erro
	if errors.As(err, &e) && e.Tipo != TipoInterno {
		corpo = corpoErro{Error: e.Tipo, Code: e.Codigo, Message: e.Mensagem}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(err))
	_ = json.NewEncoder(w).Encode(corpo)
}

// Embrulhar mantém erros já classificados e trata qualquer outro como interno.
func Embrulhar(err error) error {
	if err == nil {
		return nil
	}
	var e *Erro
	if errors.As(err, &e) {
		return err
	}
	return Interno(err)
}
