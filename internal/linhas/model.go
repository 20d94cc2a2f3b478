package linhas

import (
	"time"

	"gorm.io/gorm"
)

const (
	// StatusInicial é o único status em que o cliente ainda edita a linha.
	StatusInicial    = "inicial"
	StatusDescartada = "descartada"
)

// Linha é um número de telefone vinculado a um pedido, ocupando um slot da capacidade contratada.
type Linha struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	PedidoID         uint   `gorm:"not null;index" json:"pedidoId"`
	ProdutoID        *uint  `gorm:"index" json:"produtoId"`
	Numero           string `gorm:"size:20;not null;index" json:"numero"`
	OperadoraAtual   string `gorm:"size:100" json:"operadoraAtual"`
	OperadoraDestino string `gorm:"size:100" json:"operadoraDestino"`
	Svas             []uint `gorm:"type:jsonb;serializer:json" json:"svas"`
	Status           string `gorm:"size:30;not null;default:inicial" json:"status"`
	Observacoes      string `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Linha) TableName() string { return "linhas_pedido" }

// Ativa indica se a linha ocupa capacidade e consome SVAs.
func (l Linha) Ativa() bool { return l.Status != StatusDescartada }

// LinhasAtivas filtra as descartadas mantendo a ordem.
func LinhasAtivas(linhas []Linha) []Linha {
	out := make([]Linha, 0, len(linhas))
	for _, l := range linhas {
		if l.Ativa() {
			out = append(out, l)
		}
	}
	return out
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Linha{})
}
