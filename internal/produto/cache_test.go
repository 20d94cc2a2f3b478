package produto

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type memKV struct {
	dados  map[string]string
	falhar bool
}

func (m *memKV) Get(_ context.Context, key string) *redis.StringCmd {
	if m.falhar {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := m.dados[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memKV) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if m.falhar {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	m.dados[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (m *memKV) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(m.dados, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type origemContada struct {
	produtos map[uint]Produto
	chamadas int
}

func (o *origemContada) BuscarPorID(_ context.Context, id uint) (*Produto, error) {
	o.chamadas++
	p, ok := o.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func semLog() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCache_ReadThrough(t *testing.T) {
	ctx := context.Background()
	origem := &origemContada{produtos: map[uint]Produto{5: {ID: 5, Nome: "Antivírus", Categoria: "sva", Preco: 990}}}
	kv := &memKV{dados: map[string]string{}}
	c := NewCache(origem, kv, semLog())

	for i := 0; i < 3; i++ {
		p, err := c.BuscarPorID(ctx, 5)
		if err != nil || p.Nome != "Antivírus" || p.Preco != 990 {
			t.Fatalf("unexpected %+v %v", p, err)
		}
	}
	if origem.chamadas != 1 {
		t.Fatalf("expected one origin hit, got %d", origem.chamadas)
	}

	if err := c.Invalidar(ctx, 5); err != nil {
		t.Fatalf("invalidar: %v", err)
	}
	_, _ = c.BuscarPorID(ctx, 5)
	if origem.chamadas != 2 {
		t.Fatalf("expected refetch after invalidation, got %d", origem.chamadas)
	}
}

func TestCache_RedisForaDoAr(t *testing.T) {
	origem := &origemContada{produtos: map[uint]Produto{5: {ID: 5, Nome: "Antivírus"}}}
	c := NewCache(origem, &memKV{dados: map[string]string{}, falhar: true}, semLog())

	p, err := c.BuscarPorID(context.Background(), 5)
	if err != nil || p.ID != 5 {
		t.Fatalf("redis failure must fall back to origin: %+v %v", p, err)
	}
}

func TestCache_NaoEncontrado(t *testing.T) {
	c := NewCache(&origemContada{produtos: map[uint]Produto{}}, &memKV{dados: map[string]string{}}, semLog())

	if _, err := c.BuscarPorID(context.Background(), 1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestIsSVA(t *testing.T) {
	cases := map[string]bool{"SVA": true, "Sva Streaming": true, "movel": false, "": false, "pacote-sva": true}
	for cat, want := range cases {
		if got := (Produto{Categoria: cat}).IsSVA(); got != want {
			t.Fatalf("IsSVA(%q) expected %v", cat, want)
		}
	}
}
