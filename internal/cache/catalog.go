// Package cache guarda os catálogos de referência (profissionais
// e serviços) em Redis por um TTL curto. A listagem é lida a cada
// abertura de formulário no cliente; o cache evita bater no banco
// a cada abertura.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const catalogTTL = 2 * time.Minute

type CatalogCache struct {
	rdb *redis.Client
}

// NewCatalogCache conecta no Redis apontado por url. URL vazia
// desliga o cache (todas as operações viram no-ops).
func NewCatalogCache(url string) (*CatalogCache, error) {
	if url == "" {
		return &CatalogCache{}, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &CatalogCache{rdb: redis.NewClient(opts)}, nil
}

func (c *CatalogCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Get preenche dest com a entrada da chave, se existir.
func (c *CatalogCache) Get(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	// falha de cache nunca derruba a requisição
	_ = c.rdb.Set(ctx, key, raw, catalogTTL).Err()
}

// Invalidate remove as chaves após uma mutação de catálogo.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
