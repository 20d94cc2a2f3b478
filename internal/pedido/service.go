package pedido

import (
	"context"
	"errors"
	"strconv"

	"github.com/KromaTelecom/api-pedidos/internal/auth"
	"github.com/KromaTelecom/api-pedidos/internal/erros"
	"github.com/KromaTelecom/api-pedidos/internal/eventos"
	"github.com/KromaTelecom/api-pedidos/internal/produto"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service struct {
	store    Store
	produtos produto.Buscador
	pub      eventos.Publicador
	log      logrus.FieldLogger
}

func NewService(store Store, produtos produto.Buscador, pub eventos.Publicador, log logrus.FieldLogger) *Service {
	return &Service{store: store, produtos: produtos, pub: pub, log: log}
}

// Carregar busca o pedido e aplica a regra de posse do principal.
func Carregar(ctx context.Context, buscar func(context.Context, uint) (*Pedido, error), p auth.Principal, id uint) (*Pedido, error) {
	ped, err := buscar(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.NaoEncontrado("pedido_nao_encontrado", "pedido não encontrado")
		}
		return nil, erros.Interno(err)
	}
	if !p.PodeAcessar(ped.ClienteID) {
		return nil, erros.Proibido("pedido_de_outro_cliente", "pedido não pertence ao cliente")
	}
	return ped, nil
}

func (s *Service) Criar(ctx context.Context, p auth.Principal, in NovoPedido) (*Pedido, error) {
	clienteID := p.ClienteID
	if p.IsAdmin() {
		clienteID = in.ClienteID
	} else if in.ClienteID != 0 && in.ClienteID != p.ClienteID {
		return nil, erros.Proibido("pedido_de_outro_cliente", "cliente só pode criar pedidos para si")
	}
	if clienteID == 0 {
		return nil, erros.Validacao("cliente_obrigatorio", "clienteId é obrigatório")
	}
	if len(in.Itens) == 0 {
		return nil, erros.Validacao("itens_obrigatorios", "pedido precisa de ao menos um item")
	}

	tipo := in.TipoContratacao
	if tipo == "" {
		tipo = ContratacaoNovaLinha
	}
	ped := &Pedido{ClienteID: clienteID, TipoContratacao: tipo, Etapa: EtapaNovoPedido}

	for _, ni := range in.Itens {
		prod, err := s.produtos.BuscarPorID(ctx, ni.ProdutoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, erros.NaoEncontrado("produto_nao_encontrado", "produto "+strconv.FormatUint(uint64(ni.ProdutoID), 10)+" não encontrado")
			}
			return nil, erros.Interno(err)
		}
		if !prod.Ativo {
			return nil, erros.Validacao("produto_inativo", "produto "+prod.Nome+" está inativo")
		}
		qtd := ni.Quantidade
		if qtd <= 0 {
			qtd = 1
		}
		adicionais := ni.LinhasAdicionais
		if adicionais < 0 {
			adicionais = 0
		}
		item := ItemPedido{
			ProdutoID:        prod.ID,
			ProdutoNome:      prod.Nome,
			ProdutoCategoria: prod.Categoria,
			Quantidade:       qtd,
			LinhasAdicionais: adicionais,
			PrecoUnitario:    prod.Preco,
			Subtotal:         prod.Preco * int64(qtd),
		}
		ped.Total += item.Subtotal
		ped.Itens = append(ped.Itens, item)
	}

	if err := s.store.Criar(ctx, ped); err != nil {
		return nil, erros.Interno(err)
	}

	s.publicar(ctx, eventos.PedidoCriado, ped.ID, map[string]any{
		"pedidoId": ped.ID, "clienteId": ped.ClienteID, "total": ped.Total,
	})
	return ped, nil
}

func (s *Service) Buscar(ctx context.Context, p auth.Principal, id uint) (*Pedido, error) {
	return Carregar(ctx, s.store.BuscarPorID, p, id)
}

func (s *Service) Listar(ctx context.Context, p auth.Principal) ([]Pedido, error) {
	clienteID := p.ClienteID
	if p.IsAdmin() {
		clienteID = 0
	}
	list, err := s.store.ListarPorCliente(ctx, clienteID)
	if err != nil {
		return nil, erros.Interno(err)
	}
	return list, nil
}

// AlterarEtapa é operação do back-office; levar o pedido a uma etapa terminal libera seus números.
// Um pedido encerrado não volta a uma etapa ativa: os números liberados podem já estar em outro pedido.
func (s *Service) AlterarEtapa(ctx context.Context, p auth.Principal, id uint, etapa string) (*Pedido, error) {
	if !p.IsAdmin() {
		return nil, erros.Proibido("apenas_admin", "apenas administradores alteram a etapa")
	}
	if !EtapaValida(etapa) {
		return nil, erros.Validacao("etapa_invalida", "etapa desconhecida: "+etapa)
	}

	var (
		ped      *Pedido
		anterior string
	)
	err := s.store.EmTransacao(ctx, func(tx Store) error {
		if err := tx.Travar(ctx, id); err != nil {
			return err
		}
		var err error
		ped, err = Carregar(ctx, tx.BuscarPorID, p, id)
		if err != nil {
			return err
		}
		anterior = ped.Etapa
		if anterior == etapa {
			return nil
		}
		if EtapaTerminal(anterior) && !EtapaTerminal(etapa) {
			return erros.Conflito("pedido_encerrado", "pedido em etapa "+anterior+" não pode ser reaberto")
		}
		if err := tx.AtualizarEtapa(ctx, id, etapa); err != nil {
			return err
		}
		ped.Etapa = etapa
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.NaoEncontrado("pedido_nao_encontrado", "pedido não encontrado")
		}
		return nil, erros.Embrulhar(err)
	}

	if anterior != etapa {
		s.publicar(ctx, eventos.PedidoEtapaAlterada, id, map[string]any{
			"pedidoId": id, "de": anterior, "para": etapa,
		})
	}
	return ped, nil
}

func (s *Service) publicar(ctx context.Context, tipo string, pedidoID uint, payload any) {
	if err := s.pub.Publicar(ctx, tipo, strconv.FormatUint(uint64(pedidoID), 10), payload); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"tipo": tipo, "pedidoId": pedidoID}).Warn("evento não publicado")
	}
}
