package linhas

import (
	"context"
	"net/http"

	"github.com/KromaTelecom/api-pedidos/internal/auth"
	"github.com/KromaTelecom/api-pedidos/internal/utils"
	"github.com/sirupsen/logrus"
)

type Servico interface {
	Resumo(ctx context.Context, p auth.Principal, pedidoID uint) (*Resumo, error)
	CriarLinha(ctx context.Context, p auth.Principal, pedidoID uint, in NovaLinha) (*Linha, error)
	AtualizarLinha(ctx context.Context, p auth.Principal, linhaID uint, in AlteracaoLinha) (*Linha, error)
	AdicionarSva(ctx context.Context, p auth.Principal, linhaID, svaID uint) (*Linha, error)
	RemoverLinha(ctx context.Context, p auth.Principal, linhaID uint) error
}

type Handler struct {
	svc Servico
	log logrus.FieldLogger
}

func NewHandler(svc Servico, log logrus.FieldLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// GET /pedidos/{id}/linhas/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	pedidoID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Resumo", nil, err)
		return
	}

	res, err := h.svc.Resumo(r.Context(), p, pedidoID)
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Resumo", pedidoID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// POST /pedidos/{id}/linhas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	pedidoID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Criar", nil, err)
		return
	}
	var body NovaLinha
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Criar", pedidoID, err)
		return
	}

	l, err := h.svc.CriarLinha(r.Context(), p, pedidoID, body)
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Criar", pedidoID, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, l)
}

// PUT /linhas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	linhaID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Atualizar", nil, err)
		return
	}
	var body AlteracaoLinha
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Atualizar", linhaID, err)
		return
	}

	l, err := h.svc.AtualizarLinha(r.Context(), p, linhaID, body)
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Atualizar", linhaID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l)
}

// POST /linhas/{id}/svas
func (h *Handler) AdicionarSva(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	linhaID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "AdicionarSva", nil, err)
		return
	}
	var body SelecaoSva
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.ResponderErro(w, h.log, "linhas", "AdicionarSva", linhaID, err)
		return
	}

	l, err := h.svc.AdicionarSva(r.Context(), p, linhaID, body.SvaID)
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "AdicionarSva", linhaID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l)
}

// DELETE /linhas/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalDe(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	linhaID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Remover", nil, err)
		return
	}

	if err := h.svc.RemoverLinha(r.Context(), p, linhaID); err != nil {
		utils.ResponderErro(w, h.log, "linhas", "Remover", linhaID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
