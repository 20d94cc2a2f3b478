package produto

import (
	"github.com/KromaTelecom/api-pedidos/internal/utils"
	"github.com/shopspring/decimal"
)

type ProdutoRequest struct {
	Nome       string          `json:"nome" validate:"required,max=255"`
	Descricao  string          `json:"descricao"`
	Categoria  string          `json:"categoria" validate:"required,max=100"`
	Operadora  string          `json:"operadora" validate:"max=100"`
	Preco      decimal.Decimal `json:"preco"`
	Ativo      *bool           `json:"ativo"`
	SvasUpsell []uint          `json:"svasUpsell"`
}

// Aplicar copia o payload para o modelo; preço chega em reais e é guardado em centavos.
func (r ProdutoRequest) Aplicar(p *Produto) {
	p.Nome = r.Nome
	p.Descricao = r.Descricao
	p.Categoria = r.Categoria
	p.Operadora = r.Operadora
	p.Preco = utils.Centavos(r.Preco)
	if r.Ativo != nil {
		p.Ativo = *r.Ativo
	}
	p.SvasUpsell = utils.IDsUnicos(r.SvasUpsell)
}

type ProdutoResponse struct {
	ID         uint            `json:"id"`
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao"`
	Categoria  string          `json:"categoria"`
	Operadora  string          `json:"operadora"`
	Preco      decimal.Decimal `json:"preco"`
	Ativo      bool            `json:"ativo"`
	SVA        bool            `json:"sva"`
	SvasUpsell []uint          `json:"svasUpsell"`
}

func ToResponse(p Produto) ProdutoResponse {
	svas := p.SvasUpsell
	if svas == nil {
		svas = []uint{}
	}
	return ProdutoResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Descricao:  p.Descricao,
		Categoria:  p.Categoria,
		Operadora:  p.Operadora,
		Preco:      utils.Reais(p.Preco),
		Ativo:      p.Ativo,
		SVA:        p.IsSVA(),
		SvasUpsell: svas,
	}
}
