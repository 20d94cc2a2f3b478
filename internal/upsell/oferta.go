package upsell

import (
	"github.com/KromaTelecom/api-pedidos/internal/pedido"
	"github.com/KromaTelecom/api-pedidos/internal/utils"
)

// LimiteOfertas é o máximo de SVAs apresentados por pedido.
const LimiteOfertas = 3

const (
	MotivoLimite           = "limit_reached"
	MotivoSemSvas          = "no_more_svas"
	MotivoSvaNaoEncontrado = "sva_not_found"
)

const (
	MomentoCheckout    = "checkout"
	MomentoPosCheckout = "pos-checkout"
	MomentoPainel      = "painel"
)

// Candidatos junta os svasUpsell configurados nos produtos de linha do pedido,
// sem repetição e na ordem em que aparecem.
func Candidatos(itens []pedido.ItemPedido) []uint {
	var ids []uint
	for _, it := range itens {
		if it.IsSVA() || it.Produto == nil {
			continue
		}
		ids = append(ids, it.Produto.SvasUpsell...)
	}
	return utils.IDsUnicos(ids)
}

// Elegiveis remove dos candidatos o que já foi ofertado ou aceito.
func Elegiveis(candidatos, ofertados, aceitos []uint) []uint {
	out := make([]uint, 0, len(candidatos))
	for _, id := range candidatos {
		if utils.ContemID(ofertados, id) || utils.ContemID(aceitos, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

func Momento(ofertados int) string {
	switch ofertados {
	case 0:
		return MomentoCheckout
	case 1:
		return MomentoPosCheckout
	default:
		return MomentoPainel
	}
}
