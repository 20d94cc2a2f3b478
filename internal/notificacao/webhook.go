package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Alertador avisa a operação quando um número já vinculado a pedido ativo é reutilizado.
type Alertador interface {
	AlertarNumeroDuplicado(ctx context.Context, numero string, pedidoID uint)
}

type Webhook struct {
	URL    string
	Client *http.Client
	Log    logrus.FieldLogger
}

func NewWebhook(url string, log logrus.FieldLogger) *Webhook {
	return &Webhook{URL: url, Client: &http.Client{Timeout: 5 * time.Second}, Log: log}
}

// AlertarNumeroDuplicado é best-effort: falhas só vão para o log. Sem URL configurada não faz nada.
func (w *Webhook) AlertarNumeroDuplicado(ctx context.Context, numero string, pedidoID uint) {
	if w.URL == "" {
		return
	}
	payload := map[string]any{
		"mensagem": "Alerta: tentativa de cadastrar número já vinculado a outro pedido ativo",
		"numero":   numero,
		"pedidoId": pedidoID,
	}
	body, _ := json.Marshal(payload)

	if err := w.enviar(ctx, body); err != nil {
		w.Log.WithError(err).WithField("pedidoId", pedidoID).Warn("Erro ao enviar webhook")
	}
}

func (w *Webhook) enviar(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook respondeu %d", resp.StatusCode)
	}
	return nil
}

// Nenhum é o Alertador usado quando o webhook não está configurado.
type Nenhum struct{}

func (Nenhum) AlertarNumeroDuplicado(context.Context, string, uint) {}
