package eventos

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Publicador entrega eventos de domínio depois do commit. A chave define a partição
// (usamos o id do pedido para manter a ordem por pedido).
type Publicador interface {
	Publicar(ctx context.Context, tipo, chave string, payload any) error
}

// Nulo descarta os eventos; usado quando não há brokers configurados.
type Nulo struct {
	Log logrus.FieldLogger
}

func (n Nulo) Publicar(_ context.Context, tipo, chave string, _ any) error {
	if n.Log != nil {
		n.Log.WithFields(logrus.Fields{"tipo": tipo, "chave": chave}).Debug("evento descartado (kafka desabilitado)")
	}
	return nil
}
