package pedido

import (
	"context"
	"net/http"

	"github.com/KromaTelecom/api-pedidos/internal/auth"
	"github.com/KromaTelecom/api-pedidos/internal/utils"
	"github.com/sirupsen/logrus"
)

type Servico interface {
	Criar(ctx context.Context, p auth.Principal, in NovoPedido) (*Pedido, error)
	Buscar(ctx context.Context, p auth.Principal, id uint) (*Pedido, error)
	Listar(ctx context.Context, p auth.Principal) ([]Pedido, error)
	AlterarEtapa(ctx context.Context, p auth.Principal, id uint, etapa string) (*Pedido, error)
}

type Handler struct {
	svc Servico
	log logrus.FieldLogger
}

func NewHandler(svc Servico, log logrus.FieldLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// POST /pedidos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	var body NovoPedido
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.ResponderErro(w, h.log, "pedido", "Criar", nil, err)
		return
	}

	ped, err := h.svc.Criar(r.Context(), p, body)
	if err != nil {
		utils.ResponderErro(w, h.log, "pedido", "Criar", body, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ToResponse(*ped))
}

// GET /pedidos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	list, err := h.svc.Listar(r.Context(), p)
	if err != nil {
		utils.ResponderErro(w, h.log, "pedido", "Listar", nil, err)
		return
	}
	out := make([]PedidoResponse, 0, len(list))
	for _, ped := range list {
		out = append(out, ToResponse(ped))
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

// GET /pedidos/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "pedido", "Buscar", nil, err)
		return
	}
	ped, err := h.svc.Buscar(r.Context(), p, id)
	if err != nil {
		utils.ResponderErro(w, h.log, "pedido", "Buscar", id, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToResponse(*ped))
}

// PATCH /pedidos/{id}/etapa
func (h *Handler) AlterarEtapa(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "pedido", "AlterarEtapa", nil, err)
		return
	}
	var body AlteracaoEtapa
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.ResponderErro(w, h.log, "pedido", "AlterarEtapa", id, err)
		return
	}
	ped, err := h.svc.AlterarEtapa(r.Context(), p, id, body.Etapa)
	if err != nil {
		utils.ResponderErro(w, h.log, "pedido", "AlterarEtapa", id, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ToResponse(*ped))
}
