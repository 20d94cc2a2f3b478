package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ContemID informa se id está na lista.
func ContemID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// AdicionarID acrescenta id apenas se ainda não estiver presente.
// O segundo retorno indica se a lista mudou.
func AdicionarID(ids []uint, id uint) ([]uint, bool) {
	if ContemID(ids, id) {
		return ids, false
	}
	return append(ids, id), true
}

// IDsUnicos remove repetições preservando a ordem da primeira ocorrência.
func IDsUnicos(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		out, _ = AdicionarID(out, id)
	}
	return out
}

// NormalizarNumero mantém apenas os dígitos do telefone: "(11) 99999-0000" -> "11999990000".
func NormalizarNumero(numero string) string {
	var b strings.Builder
	for _, r := range numero {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Reais converte centavos para o valor decimal exibido nas respostas.
func Reais(centavos int64) decimal.Decimal {
	return decimal.New(centavos, -2)
}

// Centavos arredonda o valor em reais para duas casas e devolve em centavos.
func Centavos(reais decimal.Decimal) int64 {
	return reais.Round(2).Shift(2).IntPart()
}
