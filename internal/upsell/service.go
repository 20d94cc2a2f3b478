package upsell

import (
	"context"
	"errors"
	"math/rand"
	"strconv"

	"github.com/KromaTelecom/api-pedidos/internal/auth"
	"github.com/KromaTelecom/api-pedidos/internal/erros"
	"github.com/KromaTelecom/api-pedidos/internal/eventos"
	"github.com/KromaTelecom/api-pedidos/internal/pedido"
	"github.com/KromaTelecom/api-pedidos/internal/produto"
	"github.com/KromaTelecom/api-pedidos/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	errPedidoNaoEncontrado = erros.NaoEncontrado("pedido_nao_encontrado", "pedido não encontrado")
	errSvaObrigatorio      = erros.Validacao("sva_obrigatorio", "svaId é obrigatório")
	errSvaNaoEncontrado    = erros.NaoEncontrado("sva_nao_encontrado", "SVA não encontrado")
	errProdutoNaoSva       = erros.Validacao("produto_nao_sva", "o produto informado não é um SVA")
	errRespostaDivergente  = erros.Conflito("resposta_divergente", "este SVA já foi respondido de forma diferente")
)

type Service struct {
	store      Store
	produtos   produto.Buscador
	pub        eventos.Publicador
	log        logrus.FieldLogger
	embaralhar func([]uint)
}

func NewService(store Store, produtos produto.Buscador, pub eventos.Publicador, log logrus.FieldLogger) *Service {
	return &Service{store: store, produtos: produtos, pub: pub, log: log, embaralhar: embaralhar}
}

func embaralhar(ids []uint) {
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

// ProximoUpsell sorteia um SVA ainda não ofertado. Não grava nada: a oferta só conta
// quando o cliente a visualiza.
func (s *Service) ProximoUpsell(ctx context.Context, p auth.Principal, pedidoID uint) (*Proximo, error) {
	var ped *pedido.Pedido
	err := s.store.Leitura(ctx, func(tx Store) error {
		var err error
		ped, err = pedido.Carregar(ctx, tx.BuscarPedido, p, pedidoID)
		return err
	})
	if err != nil {
		return nil, erros.Embrulhar(err)
	}

	if len(ped.UpsellsOffered) >= LimiteOfertas {
		return &Proximo{Reason: MotivoLimite}, nil
	}
	elegiveis := Elegiveis(Candidatos(ped.Itens), ped.UpsellsOffered, ped.UpsellsAccepted)
	if len(elegiveis) == 0 {
		return &Proximo{Reason: MotivoSemSvas}, nil
	}
	s.embaralhar(elegiveis)

	sva, err := s.produtos.BuscarPorID(ctx, elegiveis[0])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithFields(logrus.Fields{"pedidoId": pedidoID, "svaId": elegiveis[0]}).
				Warn("svasUpsell aponta para produto inexistente")
			return &Proximo{Reason: MotivoSvaNaoEncontrado}, nil
		}
		return nil, erros.Interno(err)
	}

	return &Proximo{Upsell: &Oferta{
		ID:        sva.ID,
		Nome:      sva.Nome,
		Descricao: sva.Descricao,
		Preco:     utils.Reais(sva.Preco),
		Momento:   Momento(len(ped.UpsellsOffered)),
	}}, nil
}

// RegistrarVisualizacao marca o SVA como ofertado. Repetir a chamada não muda nada.
func (s *Service) RegistrarVisualizacao(ctx context.Context, p auth.Principal, pedidoID, svaID uint) error {
	sva, err := s.svaDoCatalogo(ctx, svaID)
	if err != nil {
		return err
	}

	err = s.store.EmTransacao(ctx, func(tx Store) error {
		if err := tx.TravarPedido(ctx, pedidoID); err != nil {
			return err
		}
		ped, err := pedido.Carregar(ctx, tx.BuscarPedido, p, pedidoID)
		if err != nil {
			return err
		}
		var mudou bool
		if ped.UpsellsOffered, mudou = utils.AdicionarID(ped.UpsellsOffered, sva.ID); !mudou {
			return nil
		}
		return tx.SalvarUpsells(ctx, ped)
	})
	return erroDeTransacao(err)
}

// RegistrarResposta grava aceite ou recusa. No aceite o SVA vira item do pedido e o total
// sobe pelo preço dele, uma única vez por produto.
func (s *Service) RegistrarResposta(ctx context.Context, p auth.Principal, pedidoID, svaID uint, aceito bool) (*Resultado, error) {
	sva, err := s.svaDoCatalogo(ctx, svaID)
	if err != nil {
		return nil, err
	}

	var (
		res   Resultado
		mudou bool
	)
	err = s.store.EmTransacao(ctx, func(tx Store) error {
		if err := tx.TravarPedido(ctx, pedidoID); err != nil {
			return err
		}
		ped, err := pedido.Carregar(ctx, tx.BuscarPedido, p, pedidoID)
		if err != nil {
			return err
		}
		if aceito && utils.ContemID(ped.UpsellsRefused, sva.ID) || !aceito && utils.ContemID(ped.UpsellsAccepted, sva.ID) {
			return errRespostaDivergente
		}

		var ofertou, respondeu bool
		ped.UpsellsOffered, ofertou = utils.AdicionarID(ped.UpsellsOffered, sva.ID)
		if aceito {
			ped.UpsellsAccepted, respondeu = utils.AdicionarID(ped.UpsellsAccepted, sva.ID)
		} else {
			ped.UpsellsRefused, respondeu = utils.AdicionarID(ped.UpsellsRefused, sva.ID)
		}
		if mudou = ofertou || respondeu; mudou {
			if err := tx.SalvarUpsells(ctx, ped); err != nil {
				return err
			}
		}
		if !aceito {
			return nil
		}

		existe, err := tx.ExisteItem(ctx, ped.ID, sva.ID)
		if err != nil || existe {
			return err
		}
		item := &pedido.ItemPedido{
			PedidoID:         ped.ID,
			ProdutoID:        sva.ID,
			ProdutoNome:      sva.Nome,
			ProdutoCategoria: sva.Categoria,
			Quantidade:       1,
			PrecoUnitario:    sva.Preco,
			Subtotal:         sva.Preco,
		}
		if err := tx.CriarItem(ctx, item); err != nil {
			return err
		}
		total, err := tx.SomarTotal(ctx, ped.ID, sva.Preco)
		if err != nil {
			return err
		}
		res.NovoTotal = &total
		return nil
	})
	if err != nil {
		return nil, erroDeTransacao(err)
	}

	if mudou || res.NovoTotal != nil {
		tipo := eventos.UpsellRecusado
		if aceito {
			tipo = eventos.UpsellAceito
		}
		payload := map[string]any{"pedidoId": pedidoID, "svaId": sva.ID}
		if res.NovoTotal != nil {
			payload["novoTotal"] = *res.NovoTotal
		}
		s.publicar(ctx, tipo, pedidoID, payload)
	}
	return &res, nil
}

func (s *Service) svaDoCatalogo(ctx context.Context, svaID uint) (*produto.Produto, error) {
	if svaID == 0 {
		return nil, errSvaObrigatorio
	}
	sva, err := s.produtos.BuscarPorID(ctx, svaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errSvaNaoEncontrado
		}
		return nil, erros.Interno(err)
	}
	if !sva.IsSVA() {
		return nil, errProdutoNaoSva
	}
	return sva, nil
}

func erroDeTransacao(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errPedidoNaoEncontrado
	}
	return erros.Embrulhar(err)
}

func (s *Service) publicar(ctx context.Context, tipo string, pedidoID uint, payload any) {
	if err := s.pub.Publicar(ctx, tipo, strconv.FormatUint(uint64(pedidoID), 10), payload); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"tipo": tipo, "pedidoId": pedidoID}).Warn("evento não publicado")
	}
}
