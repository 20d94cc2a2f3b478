package linhas_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KromaTelecom/api-pedidos/internal/auth"
	"github.com/KromaTelecom/api-pedidos/internal/erros"
	"github.com/KromaTelecom/api-pedidos/internal/linhas"
	"github.com/KromaTelecom/api-pedidos/internal/linhas/mocks"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

var cliente = auth.Principal{UsuarioID: 1, Papel: auth.PapelCliente, ClienteID: 10}

func servidor(svc linhas.Servico, autenticado bool) http.Handler {
	l := logrus.New()
	l.SetOutput(io.Discard)
	h := linhas.NewHandler(svc, l)

	r := mux.NewRouter()
	r.HandleFunc("/pedidos/{id}/linhas/resumo", h.Resumo).Methods(http.MethodGet)
	r.HandleFunc("/pedidos/{id}/linhas", h.Criar).Methods(http.MethodPost)
	r.HandleFunc("/linhas/{id}", h.Atualizar).Methods(http.MethodPut)
	r.HandleFunc("/linhas/{id}", h.Remover).Methods(http.MethodDelete)
	r.HandleFunc("/linhas/{id}/svas", h.AdicionarSva).Methods(http.MethodPost)
	if !autenticado {
		return r
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.ServeHTTP(w, req.WithContext(auth.ComPrincipal(req.Context(), cliente)))
	})
}

func corpoErro(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHandler_Resumo(t *testing.T) {
	t.Run("sem autenticacao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := httptest.NewRecorder()
		servidor(mocks.NewMockServico(ctrl), false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pedidos/1/linhas/resumo", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockServico(ctrl)
		svc.EXPECT().Resumo(gomock.Any(), cliente, uint(1)).Return(&linhas.Resumo{
			TotalLinhasContratadas: 3,
			LinhasRestantes:        3,
			ProdutosDisponiveis:    []linhas.ProdutoDisponivel{},
			SvasDisponiveis:        []linhas.SaldoSva{},
			Linhas:                 []linhas.Linha{},
			Slots:                  linhas.MontarSlots(3, nil),
		}, nil)

		w := httptest.NewRecorder()
		servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pedidos/1/linhas/resumo", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out["totalLinhasContratadas"] != float64(3) || out["progresso"] != float64(0) {
			t.Fatalf("unexpected body %v", out)
		}
		if slots, _ := out["slots"].([]any); len(slots) != 3 {
			t.Fatalf("expected 3 slots, got %v", out["slots"])
		}
	})

	t.Run("nao encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockServico(ctrl)
		svc.EXPECT().Resumo(gomock.Any(), cliente, uint(9)).Return(nil, erros.NaoEncontrado("pedido_nao_encontrado", "pedido não encontrado"))

		w := httptest.NewRecorder()
		servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pedidos/9/linhas/resumo", nil))
		if w.Code != http.StatusNotFound || corpoErro(t, w)["error"] != "not_found" {
			t.Fatalf("expected 404 not_found, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestHandler_Criar(t *testing.T) {
	t.Run("json invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := httptest.NewRecorder()
		servidor(mocks.NewMockServico(ctrl), true).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pedidos/1/linhas", bytes.NewBufferString("{")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("numero ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := httptest.NewRecorder()
		servidor(mocks.NewMockServico(ctrl), true).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pedidos/1/linhas", bytes.NewBufferString(`{"svas":[1]}`)))
		if w.Code != http.StatusBadRequest || corpoErro(t, w)["error"] != "validation" {
			t.Fatalf("expected 400 validation, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("limite atingido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockServico(ctrl)
		svc.EXPECT().CriarLinha(gomock.Any(), cliente, uint(1), linhas.NovaLinha{Numero: "11999990000"}).
			Return(nil, erros.Conflito("limite_linhas", "limite de linhas atingido"))

		w := httptest.NewRecorder()
		servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pedidos/1/linhas", bytes.NewBufferString(`{"numero":"11999990000"}`)))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := corpoErro(t, w); body["code"] != "limite_linhas" || body["message"] != "limite de linhas atingido" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockServico(ctrl)
		produtoID := uint(4)
		svc.EXPECT().CriarLinha(gomock.Any(), cliente, uint(1), gomock.Any()).
			DoAndReturn(func(_ any, _ auth.Principal, _ uint, in linhas.NovaLinha) (*linhas.Linha, error) {
				if in.ProdutoID == nil || *in.ProdutoID != produtoID || len(in.Svas) != 2 {
					t.Errorf("unexpected payload %+v", in)
				}
				return &linhas.Linha{ID: 8, PedidoID: 1, Numero: in.Numero, Status: linhas.StatusInicial}, nil
			})

		body := `{"productId":4,"numero":"11999990000","operadoraAtual":"TIM","svas":[50,51]}`
		w := httptest.NewRecorder()
		servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pedidos/1/linhas", bytes.NewBufferString(body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestHandler_Atualizar(t *testing.T) {
	t.Run("linha congelada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockServico(ctrl)
		svc.EXPECT().AtualizarLinha(gomock.Any(), cliente, uint(5), gomock.Any()).
			Return(nil, erros.Proibido("linha_congelada", "esta linha não pode mais ser editada"))

		w := httptest.NewRecorder()
		servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/linhas/5", bytes.NewBufferString(`{"observacoes":"x"}`)))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("campos ausentes ficam nulos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockServico(ctrl)
		svc.EXPECT().AtualizarLinha(gomock.Any(), cliente, uint(5), gomock.Any()).
			DoAndReturn(func(_ any, _ auth.Principal, _ uint, in linhas.AlteracaoLinha) (*linhas.Linha, error) {
				if in.Numero != nil || in.Svas != nil || in.Observacoes == nil {
					t.Errorf("unexpected partial payload %+v", in)
				}
				return &linhas.Linha{ID: 5}, nil
			})

		w := httptest.NewRecorder()
		servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/linhas/5", bytes.NewBufferString(`{"observacoes":"x"}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestHandler_AdicionarSva(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockServico(ctrl)
	svc.EXPECT().AdicionarSva(gomock.Any(), cliente, uint(5), uint(50)).
		Return(nil, erros.Conflito("sva_ja_selecionado", "SVA já selecionado nesta linha"))

	w := httptest.NewRecorder()
	servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/linhas/5/svas", bytes.NewBufferString(`{"svaId":50}`)))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestHandler_Remover(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockServico(ctrl)
		svc.EXPECT().RemoverLinha(gomock.Any(), cliente, uint(5)).Return(nil)

		w := httptest.NewRecorder()
		servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/linhas/5", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("falha de banco nao vaza", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockServico(ctrl)
		svc.EXPECT().RemoverLinha(gomock.Any(), cliente, uint(5)).Return(erros.Interno(errors.New("pq: deadlock detected")))

		w := httptest.NewRecorder()
		servidor(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/linhas/5", nil))
		if w.Code != http.StatusInternalServerError || corpoErro(t, w)["message"] != "erro interno" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})
}
