// internal/produto/handler.go
package produto

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KromaTelecom/api-pedidos/internal/config"
	"github.com/KromaTelecom/api-pedidos/internal/utils"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Catalogo interface {
	Buscador
	Create(ctx context.Context, p *Produto) error
	Update(ctx context.Context, p *Produto) error
	ListAll(ctx context.Context, categoria string) ([]Produto, error)
}

type Invalidador interface {
	Invalidar(ctx context.Context, id uint) error
}

type Handler struct {
	Repo  Catalogo
	Cache Invalidador // opcional
	Log   logrus.FieldLogger
}

func NewHandler(repo Catalogo, cache Invalidador, log logrus.FieldLogger) *Handler {
	return &Handler{Repo: repo, Cache: cache, Log: log}
}

// GET /produtos?categoria=sva
func (h *Handler) ListProdutos(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.Repo.ListAll(r.Context(), r.URL.Query().Get("categoria"))
	if err != nil {
		config.LogError(h.Log, "produto", "ListProdutos", "list", nil, err)
		http.Error(w, "Erro ao buscar produtos", http.StatusInternalServerError)
		return
	}

	out := make([]ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, ToResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /produtos/{id}
func (h *Handler) GetProduto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	prod, err := h.Repo.BuscarPorID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Produto não encontrado", http.StatusNotFound)
			return
		}
		config.LogError(h.Log, "produto", "GetProduto", "find", id, err)
		http.Error(w, "Erro ao buscar produto", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ToResponse(*prod))
}

// POST /produtos (admin)
func (h *Handler) CreateProduto(w http.ResponseWriter, r *http.Request) {
	var body ProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := utils.Validar(body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Preco.IsNegative() {
		http.Error(w, "preço não pode ser negativo", http.StatusBadRequest)
		return
	}

	p := Produto{Ativo: true}
	body.Aplicar(&p)
	if err := h.Repo.Create(r.Context(), &p); err != nil {
		config.LogError(h.Log, "produto", "CreateProduto", "create", body, err)
		http.Error(w, "Erro ao inserir produto", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, ToResponse(p))
}

// PUT /produtos/{id} (admin)
func (h *Handler) UpdateProduto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "ID de produto inválido", http.StatusBadRequest)
		return
	}

	existing, err := h.Repo.BuscarPorID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Produto não encontrado", http.StatusNotFound)
			return
		}
		config.LogError(h.Log, "produto", "UpdateProduto", "find", id, err)
		http.Error(w, "Erro ao buscar produto", http.StatusInternalServerError)
		return
	}

	var body ProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := utils.Validar(body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Preco.IsNegative() {
		http.Error(w, "preço não pode ser negativo", http.StatusBadRequest)
		return
	}

	body.Aplicar(existing)
	if err := h.Repo.Update(r.Context(), existing); err != nil {
		config.LogError(h.Log, "produto", "UpdateProduto", "update", id, err)
		http.Error(w, "Erro ao atualizar produto", http.StatusInternalServerError)
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Invalidar(r.Context(), existing.ID); err != nil {
			h.Log.WithError(err).WithField("produtoId", existing.ID).Warn("falha ao invalidar cache de produto")
		}
	}

	writeJSON(w, http.StatusOK, ToResponse(*existing))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
