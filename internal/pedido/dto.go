package pedido

import (
	"time"

	"github.com/KromaTelecom/api-pedidos/internal/utils"
	"github.com/shopspring/decimal"
)

type NovoItem struct {
	ProdutoID        uint `json:"produtoId" validate:"required"`
	Quantidade       int  `json:"quantidade" validate:"omitempty,min=1"`
	LinhasAdicionais int  `json:"linhasAdicionais" validate:"min=0"`
}

type NovoPedido struct {
	ClienteID       uint       `json:"clienteId"`
	TipoContratacao string     `json:"tipoContratacao" validate:"omitempty,oneof=nova_linha portabilidade"`
	Itens           []NovoItem `json:"itens" validate:"required,min=1,dive"`
}

type AlteracaoEtapa struct {
	Etapa string `json:"etapa" validate:"required"`
}

type ItemResponse struct {
	ID               uint            `json:"id"`
	ProdutoID        uint            `json:"produtoId"`
	ProdutoNome      string          `json:"produtoNome"`
	ProdutoCategoria string          `json:"produtoCategoria"`
	Quantidade       int             `json:"quantidade"`
	LinhasAdicionais int             `json:"linhasAdicionais"`
	PrecoUnitario    decimal.Decimal `json:"precoUnitario"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID              uint            `json:"id"`
	ClienteID       uint            `json:"clienteId"`
	TipoContratacao string          `json:"tipoContratacao"`
	Etapa           string          `json:"etapa"`
	Total           decimal.Decimal `json:"total"`
	UpsellsOffered  []uint          `json:"upsellsOffered"`
	UpsellsAccepted []uint          `json:"upsellsAccepted"`
	UpsellsRefused  []uint          `json:"upsellsRefused"`
	Itens           []ItemResponse  `json:"itens"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func ToResponse(p Pedido) PedidoResponse {
	itens := make([]ItemResponse, 0, len(p.Itens))
	for _, it := range p.Itens {
		itens = append(itens, ItemResponse{
			ID:               it.ID,
			ProdutoID:        it.ProdutoID,
			ProdutoNome:      it.Nome(),
			ProdutoCategoria: it.Categoria(),
			Quantidade:       it.Quantidade,
			LinhasAdicionais: it.LinhasAdicionais,
			PrecoUnitario:    utils.Reais(it.PrecoUnitario),
			Subtotal:         utils.Reais(it.Subtotal),
		})
	}
	return PedidoResponse{
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		TipoContratacao: p.TipoContratacao,
		Etapa:           p.Etapa,
		Total:           utils.Reais(p.Total),
		UpsellsOffered:  naoNulo(p.UpsellsOffered),
		UpsellsAccepted: naoNulo(p.UpsellsAccepted),
		UpsellsRefused:  naoNulo(p.UpsellsRefused),
		Itens:           itens,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func naoNulo(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}
	return ids
}
