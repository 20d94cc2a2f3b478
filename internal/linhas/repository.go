package linhas

import (
	"context"
	"database/sql"

	"github.com/KromaTelecom/api-pedidos/internal/pedido"
	"gorm.io/gorm"
)

// Store é a persistência usada pelo Service. Registros ausentes voltam como gorm.ErrRecordNotFound.
type Store interface {
	// EmTransacao roda fn numa transação de escrita; qualquer erro faz rollback.
	EmTransacao(ctx context.Context, fn func(Store) error) error
	// Leitura roda fn num snapshot somente-leitura (repeatable read).
	Leitura(ctx context.Context, fn func(Store) error) error

	TravarPedido(ctx context.Context, pedidoID uint) error
	TravarNumero(ctx context.Context, numero string) error

	BuscarPedido(ctx context.Context, id uint) (*pedido.Pedido, error)
	ListarLinhas(ctx context.Context, pedidoID uint) ([]Linha, error)
	BuscarLinha(ctx context.Context, id uint) (*Linha, error)
	VinculosDoNumero(ctx context.Context, numero string) ([]Vinculo, error)

	CriarLinha(ctx context.Context, l *Linha) error
	SalvarLinha(ctx context.Context, l *Linha) error
	RemoverLinha(ctx context.Context, id uint) error
}

type gormStore struct {
	db      *gorm.DB
	pedidos pedido.Repository
}

func NewStore(db *gorm.DB, pedidos pedido.Repository) Store {
	return &gormStore{db: db, pedidos: pedidos}
}

func (s *gormStore) com(tx *gorm.DB) *gormStore {
	return &gormStore{db: tx, pedidos: s.pedidos}
}

func (s *gormStore) EmTransacao(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.com(tx))
	})
}

func (s *gormStore) Leitura(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.com(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func (s *gormStore) TravarPedido(ctx context.Context, pedidoID uint) error {
	return s.pedidos.Travar(s.db.WithContext(ctx), pedidoID)
}

// TravarNumero serializa, até o fim da transação, quem disputa o mesmo número em pedidos diferentes.
func (s *gormStore) TravarNumero(ctx context.Context, numero string) error {
	return s.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", numero).Error
}

func (s *gormStore) BuscarPedido(ctx context.Context, id uint) (*pedido.Pedido, error) {
	return s.pedidos.BuscarPorID(s.db.WithContext(ctx), id)
}

func (s *gormStore) ListarLinhas(ctx context.Context, pedidoID uint) ([]Linha, error) {
	var list []Linha
	err := s.db.WithContext(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("id").
		Find(&list).Error
	return list, err
}

func (s *gormStore) BuscarLinha(ctx context.Context, id uint) (*Linha, error) {
	var l Linha
	if err := s.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *gormStore) VinculosDoNumero(ctx context.Context, numero string) ([]Vinculo, error) {
	var out []Vinculo
	err := s.db.WithContext(ctx).
		Table("linhas_pedido AS l").
		Select("l.id AS linha_id, l.pedido_id, p.etapa").
		Joins("JOIN pedidos p ON p.id = l.pedido_id").
		Where("l.numero = ? AND l.status <> ?", numero, StatusDescartada).
		Scan(&out).Error
	return out, err
}

func (s *gormStore) CriarLinha(ctx context.Context, l *Linha) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *gormStore) SalvarLinha(ctx context.Context, l *Linha) error {
	return s.db.WithContext(ctx).Save(l).Error
}

func (s *gormStore) RemoverLinha(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&Linha{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
