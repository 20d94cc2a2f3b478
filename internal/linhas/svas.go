package linhas

import (
	"github.com/KromaTelecom/api-pedidos/internal/erros"
)

// SaldoSva é a visão de estoque de um SVA para um slot.
type SaldoSva struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Total      int    `json:"quantidadeTotal"`
	Usado      int    `json:"quantidadeUsada"`
	Disponivel int    `json:"quantidadeDisponivel"`
	Esgotado   bool   `json:"esgotado"`
}

// Saldos soma as quantidades por SVA (itens repetidos se acumulam, na ordem da primeira
// ocorrência) e conta o uso nas linhas salvas ativas, exceto excluirLinhaID.
func Saldos(svas []SvaDisponivel, linhas []Linha, excluirLinhaID uint) []SaldoSva {
	idx := map[uint]int{}
	out := []SaldoSva{}
	for _, s := range svas {
		if i, ok := idx[s.ID]; ok {
			out[i].Total += s.Quantidade
			continue
		}
		idx[s.ID] = len(out)
		out = append(out, SaldoSva{ID: s.ID, Nome: s.Nome, Total: s.Quantidade})
	}

	for _, l := range linhas {
		if !l.Ativa() || (excluirLinhaID != 0 && l.ID == excluirLinhaID) {
			continue
		}
		vistos := map[uint]bool{}
		for _, id := range l.Svas {
			i, ok := idx[id]
			if !ok || vistos[id] {
				continue
			}
			vistos[id] = true
			out[i].Usado++
		}
	}

	for i := range out {
		out[i].Disponivel = out[i].Total - out[i].Usado
		out[i].Esgotado = out[i].Disponivel <= 0
	}
	return out
}

// EhUltimaLinha: o slot é o último ou nenhum slot depois dele está preenchido.
func EhUltimaLinha(slots []Slot, i int) bool {
	for j := i + 1; j < len(slots); j++ {
		if slots[j].Preenchido {
			return false
		}
	}
	return true
}

// SvasDoSlot aplica a regra de visibilidade: fora da última linha só aparecem SVAs com saldo;
// na última aparecem todos, inclusive os esgotados, para o cliente ver o que sobrou.
func SvasDoSlot(svas []SvaDisponivel, linhas []Linha, slots []Slot, i int) []SaldoSva {
	if len(svas) == 0 {
		return nil
	}
	var excluir uint
	if slots[i].Linha != nil {
		excluir = slots[i].Linha.ID
	}
	saldos := Saldos(svas, linhas, excluir)
	if EhUltimaLinha(slots, i) {
		return saldos
	}
	visiveis := make([]SaldoSva, 0, len(saldos))
	for _, s := range saldos {
		if s.Disponivel > 0 {
			visiveis = append(visiveis, s)
		}
	}
	return visiveis
}

// AdicionarSva inclui um SVA na seleção da linha; cada SVA entra no máximo uma vez por linha.
func AdicionarSva(selecionados []uint, id uint) ([]uint, error) {
	for _, s := range selecionados {
		if s == id {
			return selecionados, erros.Conflito("sva_ja_selecionado", "SVA já selecionado nesta linha")
		}
	}
	return append(selecionados, id), nil
}

// ValidarSvas confere uma seleção completa de uma linha contra o estoque do pedido.
// excluirLinhaID é a própria linha numa edição (0 na criação).
func ValidarSvas(svas []SvaDisponivel, linhas []Linha, excluirLinhaID uint, selecionados []uint) error {
	if len(selecionados) == 0 {
		return nil
	}
	if err := ConferirDuplicados(selecionados); err != nil {
		return err
	}

	saldos := Saldos(svas, linhas, excluirLinhaID)
	porID := make(map[uint]SaldoSva, len(saldos))
	for _, s := range saldos {
		porID[s.ID] = s
	}
	for _, id := range selecionados {
		s, ok := porID[id]
		if !ok {
			return erros.Validacao("sva_fora_do_pedido", "SVA não faz parte deste pedido")
		}
		if s.Disponivel <= 0 {
			return erros.Conflito("sva_esgotado", "SVA "+s.Nome+" esgotado para este pedido")
		}
	}
	return nil
}

// ConferirDuplicados rejeita uma seleção que repete o mesmo SVA.
func ConferirDuplicados(selecionados []uint) error {
	var unicos []uint
	for _, id := range selecionados {
		var err error
		if unicos, err = AdicionarSva(unicos, id); err != nil {
			return err
		}
	}
	return nil
}
