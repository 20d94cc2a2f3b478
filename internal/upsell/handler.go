package upsell

import (
	"context"
	"net/http"

	"github.com/KromaTelecom/api-pedidos/internal/auth"
	"github.com/KromaTelecom/api-pedidos/internal/utils"
	"github.com/sirupsen/logrus"
)

type Servico interface {
	ProximoUpsell(ctx context.Context, p auth.Principal, pedidoID uint) (*Proximo, error)
	RegistrarVisualizacao(ctx context.Context, p auth.Principal, pedidoID, svaID uint) error
	RegistrarResposta(ctx context.Context, p auth.Principal, pedidoID, svaID uint, aceito bool) (*Resultado, error)
}

type Handler struct {
	svc Servico
	log logrus.FieldLogger
}

func NewHandler(svc Servico, log logrus.FieldLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// GET /pedidos/{id}/upsell/proximo
func (h *Handler) Proximo(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	pedidoID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "upsell", "Proximo", nil, err)
		return
	}

	res, err := h.svc.ProximoUpsell(r.Context(), p, pedidoID)
	if err != nil {
		utils.ResponderErro(w, h.log, "upsell", "Proximo", pedidoID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// POST /pedidos/{id}/upsell/visualizado
func (h *Handler) Visualizado(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	pedidoID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "upsell", "Visualizado", nil, err)
		return
	}
	var body Visualizacao
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.ResponderErro(w, h.log, "upsell", "Visualizado", pedidoID, err)
		return
	}

	if err := h.svc.RegistrarVisualizacao(r.Context(), p, pedidoID, body.SvaID); err != nil {
		utils.ResponderErro(w, h.log, "upsell", "Visualizado", body, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// POST /pedidos/{id}/upsell/resposta
func (h *Handler) Resposta(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	pedidoID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "upsell", "Resposta", nil, err)
		return
	}
	var body Resposta
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.ResponderErro(w, h.log, "upsell", "Resposta", pedidoID, err)
		return
	}

	res, err := h.svc.RegistrarResposta(r.Context(), p, pedidoID, body.SvaID, *body.Accepted)
	if err != nil {
		utils.ResponderErro(w, h.log, "upsell", "Resposta", body, err)
		return
	}
	out := RespostaResponse{Success: true}
	if res.NovoTotal != nil {
		total := utils.Reais(*res.NovoTotal)
		out.NewTotal = &total
	}
	utils.WriteJSON(w, http.StatusOK, out)
}
