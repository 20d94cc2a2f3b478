package linhas

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/KromaTelecom/api-pedidos/internal/auth"
	"github.com/KromaTelecom/api-pedidos/internal/erros"
	"github.com/KromaTelecom/api-pedidos/internal/eventos"
	"github.com/KromaTelecom/api-pedidos/internal/notificacao"
	"github.com/KromaTelecom/api-pedidos/internal/pedido"
	"github.com/KromaTelecom/api-pedidos/internal/produto"
	"github.com/KromaTelecom/api-pedidos/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	errPedidoNaoEncontrado = erros.NaoEncontrado("pedido_nao_encontrado", "pedido não encontrado")
	errLinhaNaoEncontrada  = erros.NaoEncontrado("linha_nao_encontrada", "linha não encontrada")
	errNumeroEmUso         = erros.Conflito("numero_em_uso", "este número já está vinculado a outro pedido em andamento")
	errLimiteLinhas        = erros.Conflito("limite_linhas", "limite de linhas atingido")
	errLinhaCongelada      = erros.Proibido("linha_congelada", "esta linha não pode mais ser editada")
)

// TamanhoMaxNumero acompanha a coluna linhas_pedido.numero.
const TamanhoMaxNumero = 20

type Service struct {
	store    Store
	produtos produto.Buscador
	pub      eventos.Publicador
	alertas  notificacao.Alertador
	log      logrus.FieldLogger
}

func NewService(store Store, produtos produto.Buscador, pub eventos.Publicador, alertas notificacao.Alertador, log logrus.FieldLogger) *Service {
	return &Service{store: store, produtos: produtos, pub: pub, alertas: alertas, log: log}
}

func (s *Service) Resumo(ctx context.Context, p auth.Principal, pedidoID uint) (*Resumo, error) {
	var (
		ped    *pedido.Pedido
		linhas []Linha
	)
	err := s.store.Leitura(ctx, func(tx Store) error {
		var err error
		if ped, err = pedido.Carregar(ctx, tx.BuscarPedido, p, pedidoID); err != nil {
			return err
		}
		linhas, err = tx.ListarLinhas(ctx, pedidoID)
		return err
	})
	if err != nil {
		return nil, erros.Embrulhar(err)
	}

	capac := CalcularCapacidade(ped.Itens)
	if capac.TotalLinhasContratadas == 0 {
		s.log.WithField("pedidoId", pedidoID).Warn("pedido sem itens de linha: nenhum slot disponível")
	}

	preenchidas := len(LinhasAtivas(linhas))
	restantes := capac.TotalLinhasContratadas - preenchidas
	if restantes < 0 {
		restantes = 0
	}
	progresso := 0
	if capac.TotalLinhasContratadas > 0 {
		progresso = int(math.Round(100 * float64(preenchidas) / float64(capac.TotalLinhasContratadas)))
	}

	slots := MontarSlots(capac.TotalLinhasContratadas, linhas)
	for i := range slots {
		slots[i].Svas = SvasDoSlot(capac.Svas, linhas, slots, i)
	}

	return &Resumo{
		TotalLinhasContratadas: capac.TotalLinhasContratadas,
		TotalLinhasPreenchidas: preenchidas,
		LinhasRestantes:        restantes,
		Progresso:              progresso,
		ProdutosDisponiveis:    capac.Produtos,
		SvasDisponiveis:        Saldos(capac.Svas, linhas, 0),
		Linhas:                 linhas,
		Slots:                  slots,
	}, nil
}

func (s *Service) CriarLinha(ctx context.Context, p auth.Principal, pedidoID uint, in NovaLinha) (*Linha, error) {
	numero, err := normalizarNumero(in.Numero)
	if err != nil {
		return nil, err
	}
	svas := in.Svas
	if err := ConferirDuplicados(svas); err != nil {
		return nil, err
	}

	var (
		nova      *Linha
		duplicado bool
	)
	err = s.store.EmTransacao(ctx, func(tx Store) error {
		if err := tx.TravarPedido(ctx, pedidoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errPedidoNaoEncontrado
			}
			return err
		}
		ped, err := pedido.Carregar(ctx, tx.BuscarPedido, p, pedidoID)
		if err != nil {
			return err
		}
		if !p.IsAdmin() && pedido.EtapaTerminal(ped.Etapa) {
			return erros.Proibido("pedido_encerrado", "pedido encerrado não aceita novas linhas")
		}

		if err := tx.TravarNumero(ctx, numero); err != nil {
			return err
		}
		vinculos, err := tx.VinculosDoNumero(ctx, numero)
		if err != nil {
			return err
		}
		if NumeroEmUso(vinculos, 0) {
			duplicado = true
			return errNumeroEmUso
		}

		linhas, err := tx.ListarLinhas(ctx, pedidoID)
		if err != nil {
			return err
		}
		capac := CalcularCapacidade(ped.Itens)
		if len(LinhasAtivas(linhas)) >= capac.TotalLinhasContratadas {
			return errLimiteLinhas
		}

		destino := ""
		if in.ProdutoID != nil {
			if destino, err = s.operadoraDoProduto(ctx, capac, *in.ProdutoID); err != nil {
				return err
			}
		}
		if err := ValidarSvas(capac.Svas, linhas, 0, svas); err != nil {
			return err
		}

		nova = &Linha{
			PedidoID:         pedidoID,
			ProdutoID:        in.ProdutoID,
			Numero:           numero,
			OperadoraAtual:   strings.TrimSpace(in.OperadoraAtual),
			OperadoraDestino: destino,
			Svas:             utils.IDsUnicos(svas),
			Status:           StatusInicial,
			Observacoes:      in.Observacoes,
		}
		return tx.CriarLinha(ctx, nova)
	})
	if duplicado {
		s.numeroDuplicado(ctx, numero, pedidoID)
	}
	if err != nil {
		return nil, erros.Embrulhar(err)
	}

	s.publicar(ctx, eventos.LinhaCriada, nova)
	return nova, nil
}

func (s *Service) AtualizarLinha(ctx context.Context, p auth.Principal, linhaID uint, in AlteracaoLinha) (*Linha, error) {
	if in.Status != nil && !p.IsAdmin() {
		return nil, erros.Proibido("apenas_admin", "apenas administradores alteram o status da linha")
	}
	if in.Svas != nil {
		if err := ConferirDuplicados(*in.Svas); err != nil {
			return nil, err
		}
	}

	var (
		linha     *Linha
		duplicado *Linha
	)
	err := s.store.EmTransacao(ctx, func(tx Store) error {
		l, ped, err := s.carregarLinhaParaEdicao(ctx, tx, p, linhaID)
		if err != nil {
			return err
		}

		reativando := in.Status != nil && *in.Status != StatusDescartada && !l.Ativa()
		numeroMudou := false
		if in.Numero != nil {
			n, err := normalizarNumero(*in.Numero)
			if err != nil {
				return err
			}
			numeroMudou = n != l.Numero
			l.Numero = n
		}
		if numeroMudou || reativando {
			if err := tx.TravarNumero(ctx, l.Numero); err != nil {
				return err
			}
			vinculos, err := tx.VinculosDoNumero(ctx, l.Numero)
			if err != nil {
				return err
			}
			if NumeroEmUso(vinculos, l.ID) {
				duplicado = l
				return errNumeroEmUso
			}
		}

		if in.Svas != nil || reativando {
			linhas, err := tx.ListarLinhas(ctx, l.PedidoID)
			if err != nil {
				return err
			}
			capac := CalcularCapacidade(ped.Itens)
			if reativando && len(LinhasAtivas(linhas)) >= capac.TotalLinhasContratadas {
				return errLimiteLinhas
			}
			novas := l.Svas
			if in.Svas != nil {
				novas = utils.IDsUnicos(*in.Svas)
			}
			if err := ValidarSvas(capac.Svas, linhas, l.ID, novas); err != nil {
				return err
			}
			l.Svas = novas
		}

		if in.OperadoraAtual != nil {
			l.OperadoraAtual = strings.TrimSpace(*in.OperadoraAtual)
		}
		if in.Observacoes != nil {
			l.Observacoes = *in.Observacoes
		}
		if in.Status != nil {
			l.Status = *in.Status
		}

		linha = l
		return tx.SalvarLinha(ctx, l)
	})
	if duplicado != nil {
		s.numeroDuplicado(ctx, duplicado.Numero, duplicado.PedidoID)
	}
	if err != nil {
		return nil, erros.Embrulhar(err)
	}

	s.publicar(ctx, eventos.LinhaAtualizada, linha)
	return linha, nil
}

// AdicionarSva liga um SVA a uma linha já salva, respeitando uma unidade por linha e o saldo do pedido.
func (s *Service) AdicionarSva(ctx context.Context, p auth.Principal, linhaID, svaID uint) (*Linha, error) {
	var linha *Linha
	err := s.store.EmTransacao(ctx, func(tx Store) error {
		l, ped, err := s.carregarLinhaParaEdicao(ctx, tx, p, linhaID)
		if err != nil {
			return err
		}
		novas, err := AdicionarSva(append([]uint(nil), l.Svas...), svaID)
		if err != nil {
			return err
		}
		linhas, err := tx.ListarLinhas(ctx, l.PedidoID)
		if err != nil {
			return err
		}
		if err := ValidarSvas(CalcularCapacidade(ped.Itens).Svas, linhas, l.ID, novas); err != nil {
			return err
		}
		l.Svas = novas
		linha = l
		return tx.SalvarLinha(ctx, l)
	})
	if err != nil {
		return nil, erros.Embrulhar(err)
	}

	s.publicar(ctx, eventos.LinhaAtualizada, linha)
	return linha, nil
}

// RemoverLinha apaga a linha de vez, liberando o número e os SVAs para outros slots.
func (s *Service) RemoverLinha(ctx context.Context, p auth.Principal, linhaID uint) error {
	var removida *Linha
	err := s.store.EmTransacao(ctx, func(tx Store) error {
		l, _, err := s.carregarLinhaParaEdicao(ctx, tx, p, linhaID)
		if err != nil {
			return err
		}
		if err := tx.RemoverLinha(ctx, l.ID); err != nil {
			return err
		}
		removida = l
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errLinhaNaoEncontrada
		}
		return erros.Embrulhar(err)
	}

	s.publicar(ctx, eventos.LinhaRemovida, removida)
	return nil
}

// carregarLinhaParaEdicao busca a linha, trava o pedido dela e aplica posse e congelamento.
func (s *Service) carregarLinhaParaEdicao(ctx context.Context, tx Store, p auth.Principal, linhaID uint) (*Linha, *pedido.Pedido, error) {
	l, err := tx.BuscarLinha(ctx, linhaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errLinhaNaoEncontrada
		}
		return nil, nil, err
	}
	if err := tx.TravarPedido(ctx, l.PedidoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errPedidoNaoEncontrado
		}
		return nil, nil, err
	}
	ped, err := pedido.Carregar(ctx, tx.BuscarPedido, p, l.PedidoID)
	if err != nil {
		return nil, nil, err
	}
	if !p.IsAdmin() && l.Status != StatusInicial {
		return nil, nil, errLinhaCongelada
	}
	return l, ped, nil
}

// operadoraDoProduto exige que o produto seja um item de linha do pedido e devolve a operadora destino.
func (s *Service) operadoraDoProduto(ctx context.Context, capac Capacidade, produtoID uint) (string, error) {
	pd, noPedido := capac.Produto(produtoID)
	if noPedido && pd.Operadora != "" {
		return pd.Operadora, nil
	}

	prod, err := s.produtos.BuscarPorID(ctx, produtoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", erros.NaoEncontrado("produto_nao_encontrado", "produto não encontrado")
		}
		return "", err
	}
	if !noPedido {
		return "", erros.Validacao("produto_fora_do_pedido", "produto "+prod.Nome+" não é um item de linha deste pedido")
	}
	return prod.Operadora, nil
}

func normalizarNumero(bruto string) (string, error) {
	numero := utils.NormalizarNumero(bruto)
	if numero == "" {
		return "", erros.Validacao("numero_obrigatorio", "informe o número da linha")
	}
	if len(numero) > TamanhoMaxNumero {
		return "", erros.Validacao("numero_invalido", "o número da linha tem mais de "+strconv.Itoa(TamanhoMaxNumero)+" dígitos")
	}
	return numero, nil
}

// numeroDuplicado avisa o back-office e publica a tentativa; roda fora da transação.
func (s *Service) numeroDuplicado(ctx context.Context, numero string, pedidoID uint) {
	s.alertas.AlertarNumeroDuplicado(ctx, numero, pedidoID)
	chave := strconv.FormatUint(uint64(pedidoID), 10)
	payload := map[string]any{"numero": numero, "pedidoId": pedidoID}
	if err := s.pub.Publicar(ctx, eventos.NumeroDuplicado, chave, payload); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"tipo": eventos.NumeroDuplicado, "pedidoId": pedidoID}).Warn("evento não publicado")
	}
}

func (s *Service) publicar(ctx context.Context, tipo string, l *Linha) {
	chave := strconv.FormatUint(uint64(l.PedidoID), 10)
	if err := s.pub.Publicar(ctx, tipo, chave, l); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"tipo": tipo, "linhaId": l.ID}).Warn("evento não publicado")
	}
}
