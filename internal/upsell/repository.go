package upsell

import (
	"context"
	"database/sql"

	"github.com/KromaTelecom/api-pedidos/internal/pedido"
	"gorm.io/gorm"
)

// Store expõe só o que a negociação de upsell toca no pedido.
type Store interface {
	EmTransacao(ctx context.Context, fn func(Store) error) error
	Leitura(ctx context.Context, fn func(Store) error) error

	TravarPedido(ctx context.Context, pedidoID uint) error
	BuscarPedido(ctx context.Context, id uint) (*pedido.Pedido, error)
	SalvarUpsells(ctx context.Context, p *pedido.Pedido) error
	ExisteItem(ctx context.Context, pedidoID, produtoID uint) (bool, error)
	CriarItem(ctx context.Context, item *pedido.ItemPedido) error
	SomarTotal(ctx context.Context, pedidoID uint, valor int64) (int64, error)
}

type gormStore struct {
	db   *gorm.DB
	repo pedido.Repository
}

func NewStore(db *gorm.DB, repo pedido.Repository) Store {
	return &gormStore{db: db, repo: repo}
}

func (s *gormStore) com(tx *gorm.DB) *gormStore {
	return &gormStore{db: tx, repo: s.repo}
}

func (s *gormStore) EmTransacao(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.com(tx))
	})
}

// Leitura usa repeatable read: o Preload dos itens roda em consultas separadas do pedido.
func (s *gormStore) Leitura(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.com(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func (s *gormStore) TravarPedido(ctx context.Context, pedidoID uint) error {
	return s.repo.Travar(s.db.WithContext(ctx), pedidoID)
}

func (s *gormStore) BuscarPedido(ctx context.Context, id uint) (*pedido.Pedido, error) {
	return s.repo.BuscarPorID(s.db.WithContext(ctx), id)
}

func (s *gormStore) SalvarUpsells(ctx context.Context, p *pedido.Pedido) error {
	return s.repo.SalvarUpsells(s.db.WithContext(ctx), p)
}

func (s *gormStore) ExisteItem(ctx context.Context, pedidoID, produtoID uint) (bool, error) {
	return s.repo.ExisteItem(s.db.WithContext(ctx), pedidoID, produtoID)
}

func (s *gormStore) CriarItem(ctx context.Context, item *pedido.ItemPedido) error {
	return s.repo.CriarItem(s.db.WithContext(ctx), item)
}

func (s *gormStore) SomarTotal(ctx context.Context, pedidoID uint, valor int64) (int64, error) {
	return s.repo.SomarTotal(s.db.WithContext(ctx), pedidoID, valor)
}
