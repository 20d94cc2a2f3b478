package upsell

import "github.com/shopspring/decimal"

type Visualizacao struct {
	SvaID uint `json:"svaId" validate:"required"`
}

type Resposta struct {
	SvaID    uint  `json:"svaId" validate:"required"`
	Accepted *bool `json:"accepted" validate:"required"`
}

type Oferta struct {
	ID        uint            `json:"id"`
	Nome      string          `json:"nome"`
	Descricao string          `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"`
	Momento   string          `json:"momento"`
}

// Proximo tem upsell nulo quando não há oferta; Reason diz o porquê.
type Proximo struct {
	Upsell *Oferta `json:"upsell"`
	Reason string  `json:"reason,omitempty"`
}

// Resultado traz NovoTotal (centavos) apenas quando a resposta incluiu um item no pedido.
type Resultado struct {
	NovoTotal *int64
}

type RespostaResponse struct {
	Success  bool             `json:"success"`
	NewTotal *decimal.Decimal `json:"newTotal,omitempty"`
}
