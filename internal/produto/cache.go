package produto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// produto:{id} -> JSON do Produto
	KeyProduto = "produto:%d"

	TTLProduto = 10 * time.Minute
)

// kv é o recorte do cliente redis usado pelo cache.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache é um read-through sobre o catálogo. Falhas do redis nunca derrubam a leitura:
// o produto é buscado na origem e o erro só vai para o log.
type Cache struct {
	origem Buscador
	rdb    kv
	ttl    time.Duration
	log    logrus.FieldLogger
}

func NewCache(origem Buscador, rdb kv, log logrus.FieldLogger) *Cache {
	return &Cache{origem: origem, rdb: rdb, ttl: TTLProduto, log: log}
}

func (c *Cache) BuscarPorID(ctx context.Context, id uint) (*Produto, error) {
	key := fmt.Sprintf(KeyProduto, id)

	val, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var p Produto
		if jerr := json.Unmarshal([]byte(val), &p); jerr == nil {
			return &p, nil
		}
		c.log.WithField("key", key).Warn("cache de produto corrompido, ignorando")
	case !errors.Is(err, redis.Nil):
		c.log.WithError(err).WithField("key", key).Warn("falha ao ler cache de produto")
	}

	p, err := c.origem.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, jerr := json.Marshal(p); jerr == nil {
		if serr := c.rdb.Set(ctx, key, b, c.ttl).Err(); serr != nil {
			c.log.WithError(serr).WithField("key", key).Warn("falha ao gravar cache de produto")
		}
	}
	return p, nil
}

func (c *Cache) Invalidar(ctx context.Context, id uint) error {
	return c.rdb.Del(ctx, fmt.Sprintf(KeyProduto, id)).Err()
}
