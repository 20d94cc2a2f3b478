// internal/produto/model.go
package produto

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Produto struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Nome       string `gorm:"size:255;not null" json:"nome"`
	Descricao  string `gorm:"type:text" json:"descricao"`
	Categoria  string `gorm:"size:100;not null;index" json:"categoria"`
	Operadora  string `gorm:"size:100" json:"operadora"`
	Preco      int64  `gorm:"not null;default:0" json:"preco"` // centavos
	Ativo      bool   `gorm:"not null;default:true" json:"ativo"`
	SvasUpsell []uint `gorm:"type:jsonb;serializer:json" json:"svasUpsell"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Produto) TableName() string { return "produtos" }

// IsSVA indica serviço de valor agregado: categoria contendo "sva", sem diferenciar caixa.
func (p Produto) IsSVA() bool { return CategoriaSVA(p.Categoria) }

func CategoriaSVA(categoria string) bool {
	return strings.Contains(strings.ToLower(categoria), "sva")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Produto{})
}
