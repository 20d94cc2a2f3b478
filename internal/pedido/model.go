package pedido

import (
	"slices"
	"time"

	"github.com/KromaTelecom/api-pedidos/internal/produto"
	"gorm.io/gorm"
)

const (
	EtapaNovoPedido       = "novo_pedido"
	EtapaEmAnalise        = "em_analise"
	EtapaAjusteSolicitado = "ajuste_solicitado"
	EtapaAprovado         = "aprovado"
	EtapaEmAtivacao       = "em_ativacao"
	EtapaConcluido        = "concluido"
	EtapaCancelado        = "cancelado"
	EtapaReprovado        = "reprovado"
	EtapaEncerrado        = "encerrado"
)

const (
	ContratacaoNovaLinha     = "nova_linha"
	ContratacaoPortabilidade = "portabilidade"
)

var etapas = []string{
	EtapaNovoPedido, EtapaEmAnalise, EtapaAjusteSolicitado, EtapaAprovado, EtapaEmAtivacao,
	EtapaConcluido, EtapaCancelado, EtapaReprovado, EtapaEncerrado,
}

var etapasTerminais = []string{EtapaCancelado, EtapaReprovado, EtapaConcluido, EtapaEncerrado}

func EtapaValida(etapa string) bool { return slices.Contains(etapas, etapa) }

// EtapaTerminal indica pedido fechado: seus números deixam de estar vinculados.
func EtapaTerminal(etapa string) bool { return slices.Contains(etapasTerminais, etapa) }

// Pedido de linhas móveis de um cliente. Valores monetários em centavos.
type Pedido struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ClienteID       uint   `gorm:"not null;index" json:"clienteId"`
	TipoContratacao string `gorm:"size:30;not null;default:nova_linha" json:"tipoContratacao"`
	Etapa           string `gorm:"size:30;not null;default:novo_pedido;index" json:"etapa"`
	Total           int64  `gorm:"not null;default:0" json:"total"`

	// Listas append-only da negociação de upsell.
	UpsellsOffered  []uint `gorm:"type:jsonb;serializer:json" json:"upsellsOffered"`
	UpsellsAccepted []uint `gorm:"type:jsonb;serializer:json" json:"upsellsAccepted"`
	UpsellsRefused  []uint `gorm:"type:jsonb;serializer:json" json:"upsellsRefused"`

	Itens []ItemPedido `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE" json:"itens"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Pedido) TableName() string { return "pedidos" }

type ItemPedido struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	PedidoID         uint   `gorm:"not null;index" json:"pedidoId"`
	ProdutoID        uint   `gorm:"not null;index" json:"produtoId"`
	ProdutoNome      string `gorm:"size:255" json:"produtoNome"`
	ProdutoCategoria string `gorm:"size:100" json:"produtoCategoria"`
	Quantidade       int    `gorm:"not null;default:1" json:"quantidade"`
	LinhasAdicionais int    `gorm:"not null;default:0" json:"linhasAdicionais"`
	PrecoUnitario    int64  `gorm:"not null;default:0" json:"precoUnitario"`
	Subtotal         int64  `gorm:"not null;default:0" json:"subtotal"`

	Produto *produto.Produto `gorm:"foreignKey:ProdutoID" json:"produto,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (ItemPedido) TableName() string { return "itens_pedido" }

// Categoria prefere o produto carregado; sem ele usa a cópia gravada no item.
func (i ItemPedido) Categoria() string {
	if i.Produto != nil && i.Produto.Categoria != "" {
		return i.Produto.Categoria
	}
	return i.ProdutoCategoria
}

func (i ItemPedido) Nome() string {
	if i.Produto != nil && i.Produto.Nome != "" {
		return i.Produto.Nome
	}
	return i.ProdutoNome
}

func (i ItemPedido) IsSVA() bool { return produto.CategoriaSVA(i.Categoria()) }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pedido{}, &ItemPedido{})
}
