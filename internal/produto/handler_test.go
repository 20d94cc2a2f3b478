package produto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KromaTelecom/api-pedidos/internal/produto"
	"github.com/KromaTelecom/api-pedidos/internal/produto/mocks"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func roteador(h *produto.Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/produtos", h.ListProdutos).Methods(http.MethodGet)
	r.HandleFunc("/produtos", h.CreateProduto).Methods(http.MethodPost)
	r.HandleFunc("/produtos/{id}", h.GetProduto).Methods(http.MethodGet)
	r.HandleFunc("/produtos/{id}", h.UpdateProduto).Methods(http.MethodPut)
	return r
}

func logger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestHandler_GetProduto(t *testing.T) {
	t.Run("id invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockCatalogo(ctrl)
		r := roteador(produto.NewHandler(repo, nil, logger()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/produtos/abc", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("nao encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockCatalogo(ctrl)
		repo.EXPECT().BuscarPorID(gomock.Any(), uint(7)).Return(nil, gorm.ErrRecordNotFound)
		r := roteador(produto.NewHandler(repo, nil, logger()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/produtos/7", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("erro de banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockCatalogo(ctrl)
		repo.EXPECT().BuscarPorID(gomock.Any(), uint(7)).Return(nil, errors.New("conn reset"))
		r := roteador(produto.NewHandler(repo, nil, logger()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/produtos/7", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("sucesso em reais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockCatalogo(ctrl)
		repo.EXPECT().BuscarPorID(gomock.Any(), uint(7)).
			Return(&produto.Produto{ID: 7, Nome: "Pacote Dados", Categoria: "SVA", Preco: 1990}, nil)
		r := roteador(produto.NewHandler(repo, nil, logger()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/produtos/7", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["preco"] != "19.9" || body["sva"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestHandler_CreateProduto(t *testing.T) {
	t.Run("json invalido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := roteador(produto.NewHandler(mocks.NewMockCatalogo(ctrl), nil, logger()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString("{")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("campos obrigatorios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := roteador(produto.NewHandler(mocks.NewMockCatalogo(ctrl), nil, logger()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString(`{"preco":10}`)))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sucesso grava centavos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockCatalogo(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *produto.Produto) error {
			if p.Preco != 4990 || !p.Ativo || len(p.SvasUpsell) != 2 {
				t.Errorf("unexpected produto %+v", p)
			}
			p.ID = 11
			return nil
		})
		r := roteador(produto.NewHandler(repo, nil, logger()))

		body := `{"nome":"Plano 20GB","categoria":"movel","operadora":"Vivo","preco":"49.90","svasUpsell":[3,4,3]}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString(body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestHandler_UpdateProduto_InvalidaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogo(ctrl)
	cache := mocks.NewMockInvalidador(ctrl)

	repo.EXPECT().BuscarPorID(gomock.Any(), uint(3)).Return(&produto.Produto{ID: 3, Nome: "Antigo", Categoria: "sva", Ativo: true}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().Invalidar(gomock.Any(), uint(3)).Return(nil)

	r := roteador(produto.NewHandler(repo, cache, logger()))
	body := `{"nome":"Novo","categoria":"sva","preco":9.9,"ativo":false}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/produtos/3", bytes.NewBufferString(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["nome"] != "Novo" || out["ativo"] != false || out["preco"] != "9.9" {
		t.Fatalf("unexpected body %v", out)
	}
}

func TestHandler_ListProdutos(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogo(ctrl)
	repo.EXPECT().ListAll(gomock.Any(), "sva").Return([]produto.Produto{{ID: 1, Categoria: "SVA"}}, nil)

	r := roteador(produto.NewHandler(repo, nil, logger()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/produtos?categoria=sva", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 1 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
