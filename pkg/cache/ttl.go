// Package cache implementa um cache em memória com capacidade máxima e expiração.
package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TTL é um cache LRU com expiração por entrada. Seguro para uso concorrente.
type TTL struct {
	lru *expirable.LRU[string, any]
}

// New cria o cache. capacity <= 0 vira 1.
func New(capacity int, ttl time.Duration) *TTL {
	if capacity <= 0 {
		capacity = 1
	}

	return &TTL{
		lru: expirable.NewLRU[string, any](capacity, nil, ttl),
	}
}

// Get retorna o valor se presente e não expirado
func (c *TTL) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

// Set grava o valor, removendo a entrada menos usada se o cache estiver cheio
func (c *TTL) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Delete remove a chave; retorna se ela existia
func (c *TTL) Delete(key string) bool {
	return c.lru.Remove(key)
}

// DeletePrefix remove todas as chaves com o prefixo e retorna quantas foram removidas
func (c *TTL) DeletePrefix(prefix string) int {
	removed := 0
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) && c.lru.Remove(key) {
			removed++
		}
	}
	return removed
}

// Len inclui entradas expiradas ainda não recolhidas
func (c *TTL) Len() int {
	return c.lru.Len()
}

func (c *TTL) Purge() {
	c.lru.Purge()
}
