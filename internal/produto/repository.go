// internal/produto/repository.go
package produto

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Buscador resolve um produto do catálogo; gorm.ErrRecordNotFound quando não existe.
type Buscador interface {
	BuscarPorID(ctx context.Context, id uint) (*Produto, error)
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(ctx context.Context, p *Produto) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Produto, error) {
	var p Produto
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(ctx context.Context, p *Produto) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

// ListAll devolve o catálogo; categoria vazia não filtra.
func (r *Repository) ListAll(ctx context.Context, categoria string) ([]Produto, error) {
	var produtos []Produto
	q := r.DB.WithContext(ctx).Order("id")
	if categoria != "" {
		q = q.Where("LOWER(categoria) LIKE ?", "%"+strings.ToLower(categoria)+"%")
	}
	err := q.Find(&produtos).Error
	return produtos, err
}
