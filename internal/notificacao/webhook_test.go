package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestWebhook_AlertarNumeroDuplicado(t *testing.T) {
	var recebido map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		_ = json.NewDecoder(r.Body).Decode(&recebido)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	NewWebhook(srv.URL, logrus.New()).AlertarNumeroDuplicado(context.Background(), "11988887777", 12)

	if recebido["numero"] != "11988887777" || recebido["pedidoId"] != float64(12) {
		t.Fatalf("unexpected payload %v", recebido)
	}
}

func TestWebhook_FalhaVaiParaLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)

	NewWebhook(srv.URL, l).AlertarNumeroDuplicado(context.Background(), "1", 1)
	if !strings.Contains(buf.String(), "502") {
		t.Fatalf("expected status in log, got %q", buf.String())
	}
}

func TestWebhook_SemURL(t *testing.T) {
	w := NewWebhook("", logrus.New())
	w.Client = nil // qualquer uso do client entraria em pânico
	w.AlertarNumeroDuplicado(context.Background(), "1", 1)
}
