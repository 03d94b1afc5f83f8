package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"partstock/internal/pkg/logger"
)

// Nomes das coleções cacheadas. Cada mutação invalida as coleções afetadas.
const (
	CollectionParts        = "parts"
	CollectionColors       = "colors"
	CollectionStocks       = "stocks"
	CollectionOrders       = "orders"
	CollectionTransactions = "transactions"
)

// CollectionCache é um cache read-through de listagens, chaveado pelo nome da coleção.
//
// Cada coleção tem um contador de geração ("collection:<nome>:gen"). As listagens são
// gravadas em "collection:<nome>:<geração>:<variante>"; invalidar incrementa a geração,
// e as chaves antigas expiram pelo TTL.
type CollectionCache struct {
	client Client
	ttl    time.Duration
	logger logger.Logger
}

// NewCollectionCache cria o cache de coleções.
func NewCollectionCache(client Client, ttl time.Duration, log logger.Logger) *CollectionCache {
	return &CollectionCache{client: client, ttl: ttl, logger: log}
}

func generationKey(collection string) string {
	return fmt.Sprintf("collection:%s:gen", collection)
}

func (c *CollectionCache) dataKey(ctx context.Context, collection, variant string) (string, error) {
	gen, err := c.client.GetInt(ctx, generationKey(collection))
	if err != nil && err != ErrCacheMiss {
		return "", err
	}
	return fmt.Sprintf("collection:%s:%d:%s", collection, gen, variant), nil
}

// Invalidate descarta todas as listagens em cache das coleções informadas.
// Falhas são apenas registradas: o pior caso é servir dados até o TTL expirar.
func (c *CollectionCache) Invalidate(ctx context.Context, collections ...string) {
	if c == nil {
		return
	}
	for _, name := range collections {
		if _, err := c.client.Incr(ctx, generationKey(name)); err != nil {
			c.logger.Warn("Falha ao invalidar coleção no cache.", map[string]interface{}{"collection": name, "error": err.Error()})
			continue
		}
		c.logger.Debug("Coleção invalidada no cache.", map[string]interface{}{"collection": name})
	}
}

// Fetch devolve a listagem da coleção a partir do cache ou, em caso de miss, de load.
// Erros de cache nunca impedem a leitura: a chamada cai direto para load.
func Fetch[T any](ctx context.Context, c *CollectionCache, collection, variant string, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	key, err := c.dataKey(ctx, collection, variant)
	if err != nil {
		c.logger.Warn("Cache indisponível, consultando a origem.", map[string]interface{}{"collection": collection, "error": err.Error()})
		return load(ctx)
	}

	// Cache HIT
	if cached, err := c.client.Get(ctx, key); err == nil {
		var value T
		if jsonErr := json.Unmarshal([]byte(cached), &value); jsonErr == nil {
			c.logger.Debug("Cache HIT de coleção.", map[string]interface{}{"key": key})
			return value, nil
		}
	} else if err != ErrCacheMiss {
		c.logger.Warn("Falha ao ler coleção do cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	// Cache MISS: carrega da origem e popula o cache
	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Falha ao serializar coleção para cache.", map[string]interface{}{"key": key, "error": err.Error()})
		return value, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl); err != nil {
		c.logger.Warn("Falha ao gravar coleção no cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}
	return value, nil
}
