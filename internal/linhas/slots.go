package linhas

import "sort"

// Slot é a projeção de uma posição de linha contratada. Apenas o primeiro slot vazio
// é editável; os vazios seguintes ficam bloqueados até ele ser salvo.
type Slot struct {
	Indice      int        `json:"indice"`
	Linha       *Linha     `json:"linha,omitempty"`
	Preenchido  bool       `json:"preenchido"`
	Editavel    bool       `json:"editavel"`
	Bloqueado   bool       `json:"bloqueado"`
	UltimaLinha bool       `json:"ultimaLinha"`
	Svas        []SaldoSva `json:"svas,omitempty"`
}

// MontarSlots distribui as linhas ativas (por ordem de criação) nas posições 0..N-1.
// Se houver mais linhas que capacidade (itens alterados depois), todas continuam visíveis.
func MontarSlots(total int, linhas []Linha) []Slot {
	ativas := LinhasAtivas(linhas)
	sort.SliceStable(ativas, func(i, j int) bool { return ativas[i].ID < ativas[j].ID })

	n := total
	if len(ativas) > n {
		n = len(ativas)
	}
	slots := make([]Slot, n)
	primeiroVazio := true
	for i := range slots {
		slots[i].Indice = i
		if i < len(ativas) {
			l := ativas[i]
			slots[i].Linha = &l
			slots[i].Preenchido = true
			slots[i].Editavel = l.Status == StatusInicial
		} else if primeiroVazio {
			slots[i].Editavel = true
			primeiroVazio = false
		}
		slots[i].Bloqueado = !slots[i].Editavel
	}
	for i := range slots {
		slots[i].UltimaLinha = EhUltimaLinha(slots, i)
	}
	return slots
}
