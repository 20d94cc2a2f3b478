package pedido

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository recebe o *gorm.DB da chamada para poder rodar dentro de uma transação aberta pelo serviço.
type Repository interface {
	Criar(db *gorm.DB, p *Pedido) error
	BuscarPorID(db *gorm.DB, id uint) (*Pedido, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]Pedido, error)
	Travar(db *gorm.DB, id uint) error
	AtualizarEtapa(db *gorm.DB, id uint, etapa string) error
	SalvarUpsells(db *gorm.DB, p *Pedido) error
	ExisteItem(db *gorm.DB, pedidoID, produtoID uint) (bool, error)
	CriarItem(db *gorm.DB, item *ItemPedido) error
	SomarTotal(db *gorm.DB, pedidoID uint, valor int64) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Pedido) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Pedido, error) {
	var p Pedido
	err := db.
		Preload("Itens", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Itens.Produto").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarPorCliente com clienteID zero lista todos (visão do admin).
func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]Pedido, error) {
	var list []Pedido
	q := db.Order("id DESC")
	if clienteID != 0 {
		q = q.Where("cliente_id = ?", clienteID)
	}
	err := q.Preload("Itens").Find(&list).Error
	return list, err
}

// Travar faz SELECT ... FOR UPDATE na linha do pedido; só tem efeito dentro de transação.
func (r *repositoryImpl) Travar(db *gorm.DB, id uint) error {
	var p Pedido
	return db.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&p, id).Error
}

func (r *repositoryImpl) AtualizarEtapa(db *gorm.DB, id uint, etapa string) error {
	res := db.Model(&Pedido{}).Where("id = ?", id).Update("etapa", etapa)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) SalvarUpsells(db *gorm.DB, p *Pedido) error {
	return db.Model(p).
		Select("UpsellsOffered", "UpsellsAccepted", "UpsellsRefused", "UpdatedAt").
		Updates(p).Error
}

func (r *repositoryImpl) ExisteItem(db *gorm.DB, pedidoID, produtoID uint) (bool, error) {
	var n int64
	err := db.Model(&ItemPedido{}).
		Where("pedido_id = ? AND produto_id = ?", pedidoID, produtoID).
		Count(&n).Error
	return n > 0, err
}

func (r *repositoryImpl) CriarItem(db *gorm.DB, item *ItemPedido) error {
	return db.Omit("Produto").Create(item).Error
}

// SomarTotal incrementa o total no próprio banco (aritmética inteira) e devolve o valor novo.
func (r *repositoryImpl) SomarTotal(db *gorm.DB, pedidoID uint, valor int64) (int64, error) {
	if err := db.Model(&Pedido{}).
		Where("id = ?", pedidoID).
		Update("total", gorm.Expr("total + ?", valor)).Error; err != nil {
		return 0, err
	}
	var total int64
	err := db.Model(&Pedido{}).Select("total").Where("id = ?", pedidoID).Scan(&total).Error
	return total, err
}
