package pedido

import (
	"context"

	"gorm.io/gorm"
)

// Store é o acesso a pedidos usado pelo Service.
type Store interface {
	EmTransacao(ctx context.Context, fn func(Store) error) error
	Criar(ctx context.Context, p *Pedido) error
	BuscarPorID(ctx context.Context, id uint) (*Pedido, error)
	ListarPorCliente(ctx context.Context, clienteID uint) ([]Pedido, error)
	Travar(ctx context.Context, id uint) error
	AtualizarEtapa(ctx context.Context, id uint, etapa string) error
}

type gormStore struct {
	db   *gorm.DB
	repo Repository
}

func NewStore(db *gorm.DB, repo Repository) Store {
	return &gormStore{db: db, repo: repo}
}

func (s *gormStore) EmTransacao(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx, repo: s.repo})
	})
}

func (s *gormStore) Criar(ctx context.Context, p *Pedido) error {
	return s.repo.Criar(s.db.WithContext(ctx), p)
}

func (s *gormStore) BuscarPorID(ctx context.Context, id uint) (*Pedido, error) {
	return s.repo.BuscarPorID(s.db.WithContext(ctx), id)
}

func (s *gormStore) ListarPorCliente(ctx context.Context, clienteID uint) ([]Pedido, error) {
	return s.repo.ListarPorCliente(s.db.WithContext(ctx), clienteID)
}

func (s *gormStore) Travar(ctx context.Context, id uint) error {
	return s.repo.Travar(s.db.WithContext(ctx), id)
}

func (s *gormStore) AtualizarEtapa(ctx context.Context, id uint, etapa string) error {
	return s.repo.AtualizarEtapa(s.db.WithContext(ctx), id, etapa)
}
