package linhas

import (
	"github.com/KromaTelecom/api-pedidos/internal/pedido"
)

// ProdutoDisponivel é um item de capacidade do pedido, escolhível ao cadastrar uma linha.
type ProdutoDisponivel struct {
	ID               uint   `json:"id"`
	Nome             string `json:"nome"`
	Categoria        string `json:"categoria"`
	Operadora        string `json:"operadora"`
	Quantidade       int    `json:"quantidade"`
	LinhasAdicionais int    `json:"linhasAdicionais"`
}

// SvaDisponivel é a contribuição de um item SVA ao estoque de SVAs do pedido.
type SvaDisponivel struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

type Capacidade struct {
	TotalLinhasContratadas int
	Produtos               []ProdutoDisponivel
	Svas                   []SvaDisponivel
}

// CalcularCapacidade separa itens de linha e itens SVA. Cada item de linha contribui
// quantidade + linhasAdicionais; quantidade ausente conta como 1 e adicionais negativos como 0.
func CalcularCapacidade(itens []pedido.ItemPedido) Capacidade {
	c := Capacidade{Produtos: []ProdutoDisponivel{}, Svas: []SvaDisponivel{}}
	for _, it := range itens {
		qtd := it.Quantidade
		if qtd <= 0 {
			qtd = 1
		}
		if it.IsSVA() {
			c.Svas = append(c.Svas, SvaDisponivel{ID: it.ProdutoID, Nome: it.Nome(), Quantidade: qtd})
			continue
		}
		adicionais := it.LinhasAdicionais
		if adicionais < 0 {
			adicionais = 0
		}
		operadora := ""
		if it.Produto != nil {
			operadora = it.Produto.Operadora
		}
		c.TotalLinhasContratadas += qtd + adicionais
		c.Produtos = append(c.Produtos, ProdutoDisponivel{
			ID:               it.ProdutoID,
			Nome:             it.Nome(),
			Categoria:        it.Categoria(),
			Operadora:        operadora,
			Quantidade:       qtd,
			LinhasAdicionais: adicionais,
		})
	}
	return c
}

func (c Capacidade) Produto(id uint) (ProdutoDisponivel, bool) {
	for _, p := range c.Produtos {
		if p.ID == id {
			return p, true
		}
	}
	return ProdutoDisponivel{}, false
}
