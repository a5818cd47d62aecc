package incident

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

// StorageKeyPrefix prefixa a chave da fila de cada local no armazenamento durável
const StorageKeyPrefix = "offline_incidents_"

// StorageKey retorna a chave da fila de um local (ex: offline_incidents_v1)
func StorageKey(venueID string) string {
	return StorageKeyPrefix + venueID
}

// Store é o armazenamento chave-valor durável onde a fila é serializada a cada mutação
type Store interface {
	// Get retorna o valor da chave; found é falso quando a chave não existe
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lista as chaves que começam com prefix
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Transport envia um incidente ao backend. Retornar false ou erro marca a tentativa como falha.
type Transport interface {
	SyncIncident(ctx context.Context, incident domain.OfflineIncident) (bool, error)
}

// TransportFunc adapta uma função ao Transport
type TransportFunc func(ctx context.Context, incident domain.OfflineIncident) (bool, error)

func (f TransportFunc) SyncIncident(ctx context.Context, incident domain.OfflineIncident) (bool, error) {
	return f(ctx, incident)
}
