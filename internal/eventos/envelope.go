package eventos

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	LinhaCriada         = "linha.criada"
	LinhaAtualizada     = "linha.atualizada"
	LinhaRemovida       = "linha.removida"
	UpsellAceito        = "upsell.aceito"
	UpsellRecusado      = "upsell.recusado"
	PedidoCriado        = "pedido.criado"
	PedidoEtapaAlterada = "pedido.etapa_alterada"
	NumeroDuplicado     = "linha.numero_duplicado"

	versaoEnvelopeAtual = 1
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // normalmente o id do pedido
	Payload       json.RawMessage `json:"payload"`
}

func NovoEnvelope(produtor, tipo, correlacao string, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     tipo,
		EventVersion:  versaoEnvelopeAtual,
		OccurredAt:    time.Now().UTC(),
		Producer:      produtor,
		CorrelationID: correlacao,
		Payload:       b,
	}, nil
}
