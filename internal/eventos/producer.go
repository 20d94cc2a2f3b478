package eventos

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

var ErrProducerFechado = errors.New("producer fechado")

type escritor interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publica envelopes no Kafka a partir de uma fila em memória drenada por uma goroutine.
type Producer struct {
	w        escritor
	inbox    chan kafka.Message
	done     chan struct{}
	produtor string
	log      logrus.FieldLogger

	mu      sync.RWMutex
	fechado bool
}

func NewProducer(brokers []string, topico string, buf int, produtor string, log logrus.FieldLogger) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topico,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return novoProducer(w, buf, produtor, log)
}

func novoProducer(w escritor, buf int, produtor string, log logrus.FieldLogger) *Producer {
	return &Producer{
		w:        w,
		inbox:    make(chan kafka.Message, buf),
		done:     make(chan struct{}),
		produtor: produtor,
		log:      log,
	}
}

func (p *Producer) Start() {
	go func() {
		defer close(p.done)
		for m := range p.inbox {
			if err := p.w.WriteMessages(context.Background(), m); err != nil {
				p.log.WithError(err).WithField("key", string(m.Key)).Error("falha ao publicar evento")
			}
		}
		if err := p.w.Close(); err != nil {
			p.log.WithError(err).Warn("falha ao fechar writer kafka")
		}
	}()
}

func (p *Producer) Publicar(ctx context.Context, tipo, chave string, payload any) error {
	env, err := NovoEnvelope(p.produtor, tipo, chave, payload)
	if err != nil {
		return err
	}
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:     []byte(chave),
		Value:   b,
		Time:    env.OccurredAt,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(tipo)}},
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.fechado {
		return ErrProducerFechado
	}
	select {
	case p.inbox <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close para de aceitar eventos, drena a fila e espera o writer fechar.
func (p *Producer) Close() {
	p.mu.Lock()
	if !p.fechado {
		p.fechado = true
		close(p.inbox)
	}
	p.mu.Unlock()
	<-p.done
}
