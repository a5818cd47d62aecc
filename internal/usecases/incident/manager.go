package incident

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
)

// Manager mantém uma fila por local, todas no mesmo Store
type Manager struct {
	store Store
	opts  Options

	mu     sync.Mutex
	queues map[string]*Queue
	online bool
}

// NewManager cria o gerenciador. O estado inicial é offline, então a primeira
// verificação de conectividade bem-sucedida dispara a sincronização.
func NewManager(store Store, opts Options) *Manager {
	return &Manager{
		store:  store,
		opts:   opts.withDefaults(),
		queues: make(map[string]*Queue),
	}
}

// Queue retorna a fila do local, carregando-a do store no primeiro acesso
func (m *Manager) Queue(ctx context.Context, venueID string) (*Queue, error) {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return nil, NewIncidentError(ErrVenueIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if queue, ok := m.queues[venueID]; ok {
		return queue, nil
	}

	queue := NewQueue(venueID, m.store, m.opts)
	if err := queue.Load(ctx); err != nil {
		return nil, err
	}

	if m.online {
		queue.SetOnline(ctx, true)
	}

	m.queues[venueID] = queue
	return queue, nil
}

// Venues lista os locais com fila persistida ou carregada, em ordem alfabética
func (m *Manager) Venues(ctx context.Context) ([]string, error) {
	keys, err := m.store.Keys(ctx, StorageKeyPrefix)
	if err != nil {
		return nil, NewIncidentError(ErrLoad, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if venueID := strings.TrimPrefix(key, StorageKeyPrefix); venueID != "" {
			seen[venueID] = true
		}
	}

	m.mu.Lock()
	for venueID := range m.queues {
		seen[venueID] = true
	}
	m.mu.Unlock()

	venues := make([]string, 0, len(seen))
	for venueID := range seen {
		venues = append(venues, venueID)
	}
	sort.Strings(venues)

	return venues, nil
}

// Online retorna o último estado de conectividade registrado
func (m *Manager) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline propaga o estado de conectividade para todas as filas. Na transição
// para online as filas persistidas ainda não carregadas também são abertas,
// para que relatos gravados antes de um restart sejam reenviados.
func (m *Manager) SetOnline(ctx context.Context, online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	m.mu.Unlock()

	if changed {
		logrus.WithField("online", online).Info("incidents: connectivity changed")
	}

	if online && changed {
		venues, err := m.Venues(ctx)
		if err != nil {
			logrus.WithError(err).Error("incidents: failed to list persisted queues")
		}
		for _, venueID := range venues {
			if _, err := m.Queue(ctx, venueID); err != nil {
				logrus.WithError(err).WithField("venue_id", venueID).Error("incidents: failed to load queue")
			}
		}
	}

	for _, queue := range m.loaded() {
		queue.SetOnline(ctx, online)
	}
}

// SyncAll executa um ciclo em cada fila conhecida, um local por vez
func (m *Manager) SyncAll(ctx context.Context, trigger domain.SyncTrigger) ([]domain.SyncResult, error) {
	venues, err := m.Venues(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SyncResult, 0, len(venues))
	for _, venueID := range venues {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		queue, err := m.Queue(ctx, venueID)
		if err != nil {
			logrus.WithError(err).WithField("venue_id", venueID).Error("incidents: skipping venue, queue could not be loaded")
			continue
		}

		result, err := queue.Sync(ctx, trigger)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// Statuses retorna o resumo de todas as filas carregadas
func (m *Manager) Statuses() []domain.IncidentQueueStatus {
	queues := m.loaded()
	statuses := make([]domain.IncidentQueueStatus, 0, len(queues))
	for _, queue := range queues {
		statuses = append(statuses, queue.Status())
	}
	return statuses
}

// IsSyncing indica se alguma fila está sincronizando
func (m *Manager) IsSyncing() bool {
	for _, queue := range m.loaded() {
		if queue.IsSyncing() {
			return true
		}
	}
	return false
}

// Wait aguarda as sincronizações em background de todas as filas
func (m *Manager) Wait() {
	for _, queue := range m.loaded() {
		queue.Wait()
	}
}

func (m *Manager) loaded() []*Queue {
	m.mu.Lock()
	defer m.mu.Unlock()

	queues := make([]*Queue, 0, len(m.queues))
	for _, queue := range m.queues {
		queues = append(queues, queue)
	}
	sort.Slice(queues, func(i, j int) bool {
		return queues[i].VenueID() < queues[j].VenueID()
	})
	return queues
}
