package kvstore

import (
	"context"
	"fmt"

	"github.com/vfg2006/wedsync-venue-api/internal/config"
)

// Store é o contrato comum dos armazenamentos, com Close para o shutdown
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Open cria o armazenamento escolhido em LOCAL_STORE_DRIVER
func Open(ctx context.Context, cfg config.LocalStore) (Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return NewSQLiteStore(ctx, cfg.Path)
	case "redis":
		return NewRedisStore(ctx, cfg.RedisURL)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("kvstore: driver desconhecido %q", cfg.Driver)
	}
}
