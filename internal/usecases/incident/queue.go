// Package incident implementa a fila offline de relatos de incidentes de um local.
//
// Cada mutação da fila é serializada imediatamente no Store sob a chave
// offline_incidents_{venueID}, de forma que um restart reconstrói a fila
// inalterada. Um relato só deixa de ser reenviado depois que o Transport
// confirma o recebimento; falhas incrementam RetryCount e mantêm o registro.
package incident

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/pkg/apiErrors"
	"github.com/vfg2006/wedsync-venue-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultPruneAfter é por quanto tempo um incidente sincronizado continua na fila
const DefaultPruneAfter = 24 * time.Hour

// Options configura os colaboradores de uma fila
type Options struct {
	// Transport é chamado a cada tentativa de sincronização (onIncidentSync)
	Transport Transport
	// OnOfflineReport é chamado depois que um novo relato foi persistido
	OnOfflineReport func(domain.OfflineIncident)
	PruneAfter      time.Duration
	Now             func() time.Time
	NewID           func() (string, error)
}

func (o Options) withDefaults() Options {
	if o.PruneAfter <= 0 {
		o.PruneAfter = DefaultPruneAfter
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = utils.GenerateID
	}
	return o
}

// Queue é a fila offline de um local
type Queue struct {
	venueID string
	store   Store
	opts    Options

	// mu protege incidents e serializa as escritas no store
	mu        sync.Mutex
	incidents []*domain.OfflineIncident

	syncMutex           sync.Mutex
	syncRunning         bool
	online              bool
	lastSyncStartedAt   *time.Time
	lastSyncCompletedAt *time.Time

	background sync.WaitGroup
}

// NewQueue cria a fila de um local. A fila começa vazia até Load.
func NewQueue(venueID string, store Store, opts Options) *Queue {
	return &Queue{
		venueID: venueID,
		store:   store,
		opts:    opts.withDefaults(),
	}
}

// VenueID retorna o local da fila
func (q *Queue) VenueID() string {
	return q.venueID
}

// Load reconstrói a fila a partir do store. Registros gravados como syncing
// (tentativa interrompida) voltam para pending sem alterar o RetryCount.
func (q *Queue) Load(ctx context.Context) error {
	raw, found, err := q.store.Get(ctx, StorageKey(q.venueID))
	if err != nil {
		return NewIncidentError(ErrLoad, apiErrors.ErrDatabaseOperation, q.venueID, err.Error())
	}

	incidents := make([]*domain.OfflineIncident, 0)
	if found && len(raw) > 0 {
		if err := json.Unmarshal(raw, &incidents); err != nil {
			return NewIncidentError(ErrCorruptQueue, apiErrors.ErrDatabaseOperation, q.venueID, err.Error())
		}
	}

	interrupted := 0
	for _, incident := range incidents {
		if incident.SyncStatus == domain.SyncStatusSyncing {
			incident.SyncStatus = domain.SyncStatusPending
			interrupted++
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.incidents = incidents

	logrus.WithFields(logrus.Fields{
		"venue_id":    q.venueID,
		"incidents":   len(incidents),
		"interrupted": interrupted,
	}).Debug("incidents: offline queue loaded")

	if interrupted > 0 {
		return q.persistLocked(ctx)
	}

	return nil
}

// SaveOfflineIncident adiciona um relato à fila como pending e persiste a fila.
// Se a persistência falhar o relato continua na fila em memória e é gravado
// na próxima mutação; o erro é retornado junto com o incidente criado.
func (q *Queue) SaveOfflineIncident(ctx context.Context, report domain.IncidentReport) (domain.OfflineIncident, error) {
	if err := report.Validate(); err != nil {
		return domain.OfflineIncident{}, NewIncidentError(ErrInvalidReport, apiErrors.ErrIncidentInvalid, q.venueID, err.Error())
	}

	id, err := q.opts.NewID()
	if err != nil {
		return domain.OfflineIncident{}, NewIncidentError(ErrGenerateID, apiErrors.ErrInternalServer, q.venueID, err.Error())
	}

	incident := &domain.OfflineIncident{
		ID:          id,
		VenueID:     q.venueID,
		Type:        report.Type,
		Severity:    report.Severity,
		Title:       report.Title,
		Description: report.Description,
		Location:    report.Location,
		Coordinates: report.Coordinates,
		ReportedBy:  report.ReportedBy,
		Timestamp:   q.opts.Now(),
		SyncStatus:  domain.SyncStatusPending,
		RetryCount:  0,
	}

	q.mu.Lock()
	q.incidents = append(q.incidents, incident)
	persistErr := q.persistLocked(ctx)
	saved := *incident
	q.mu.Unlock()

	logger := logrus.WithFields(logrus.Fields{
		"venue_id":    q.venueID,
		"incident_id": saved.ID,
		"type":        saved.Type,
		"severity":    saved.Severity,
	})

	if persistErr != nil {
		logger.WithError(persistErr).Error("incidents: offline report kept in memory, persistence failed")
		return saved, persistErr
	}

	logger.Info("incidents: offline report queued")

	if q.opts.OnOfflineReport != nil {
		q.opts.OnOfflineReport(saved)
	}

	return saved, nil
}

// Sync executa um ciclo de sincronização. Se já houver um ciclo em andamento
// a chamada não faz nada e retorna Skipped. Os incidentes são enviados um por
// vez, na ordem da fila; falhas ficam registradas no próprio incidente.
func (q *Queue) Sync(ctx context.Context, trigger domain.SyncTrigger) (domain.SyncResult, error) {
	result := domain.SyncResult{VenueID: q.venueID, Trigger: trigger}

	if q.opts.Transport == nil {
		return result, NewIncidentError(ErrNoTransport, apiErrors.ErrInternalServer, q.venueID, "")
	}

	q.syncMutex.Lock()
	if q.syncRunning {
		q.syncMutex.Unlock()
		logrus.WithField("venue_id", q.venueID).Info("incidents: sync already running, ignoring trigger")
		result.Skipped = true
		return result, nil
	}
	q.syncRunning = true
	startedAt := q.opts.Now()
	q.lastSyncStartedAt = &startedAt
	q.syncMutex.Unlock()

	defer func() {
		q.syncMutex.Lock()
		q.syncRunning = false
		completedAt := q.opts.Now()
		q.lastSyncCompletedAt = &completedAt
		q.syncMutex.Unlock()
	}()

	pruned, err := q.Prune(ctx)
	if err != nil {
		logrus.WithError(err).WithField("venue_id", q.venueID).Warn("incidents: prune failed, continuing sync")
	}
	result.Pruned = pruned

	for _, id := range q.pendingIDs() {
		if ctx.Err() != nil {
			logrus.WithField("venue_id", q.venueID).Warn("incidents: sync interrupted by context cancellation")
			break
		}

		attempt, ok := q.markSyncing(ctx, id)
		if !ok {
			continue
		}
		result.Attempted++

		acked, syncErr := q.send(ctx, attempt)
		if q.finishAttempt(ctx, id, acked, syncErr) {
			result.Synced++
		} else {
			result.Failed++
		}
	}

	logrus.WithFields(logrus.Fields{
		"venue_id":  q.venueID,
		"trigger":   trigger,
		"attempted": result.Attempted,
		"synced":    result.Synced,
		"failed":    result.Failed,
		"pruned":    result.Pruned,
	}).Info("incidents: sync cycle finished")

	return result, nil
}

// SetOnline registra o estado de conectividade. A transição offline -> online
// dispara um ciclo de sincronização em background.
func (q *Queue) SetOnline(ctx context.Context, online bool) {
	q.syncMutex.Lock()
	wasOnline := q.online
	q.online = online
	q.syncMutex.Unlock()

	if wasOnline || !online {
		return
	}

	logrus.WithField("venue_id", q.venueID).Info("incidents: connectivity restored, starting sync")

	syncCtx := context.WithoutCancel(ctx)
	q.background.Add(1)
	go func() {
		defer q.background.Done()
		if _, err := q.Sync(syncCtx, domain.SyncTriggerConnectivity); err != nil {
			logrus.WithError(err).WithField("venue_id", q.venueID).Error("incidents: connectivity sync failed")
		}
	}()
}

// Wait aguarda os ciclos disparados em background
func (q *Queue) Wait() {
	q.background.Wait()
}

// Prune remove os incidentes sincronizados há mais de PruneAfter.
// Incidentes pending, syncing ou error nunca são removidos.
func (q *Queue) Prune(ctx context.Context) (int, error) {
	cutoff := q.opts.Now().Add(-q.opts.PruneAfter)

	q.mu.Lock()
	defer q.mu.Unlock()

	kept := make([]*domain.OfflineIncident, 0, len(q.incidents))
	for _, incident := range q.incidents {
		if incident.SyncedBefore(cutoff) {
			continue
		}
		kept = append(kept, incident)
	}

	pruned := len(q.incidents) - len(kept)
	if pruned == 0 {
		return 0, nil
	}

	q.incidents = kept
	return pruned, q.persistLocked(ctx)
}

// Clear remove todos os incidentes da fila, a pedido do usuário
func (q *Queue) Clear(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	removed := len(q.incidents)
	q.incidents = make([]*domain.OfflineIncident, 0)

	if err := q.store.Delete(ctx, StorageKey(q.venueID)); err != nil {
		return removed, NewIncidentError(ErrPersist, apiErrors.ErrIncidentPersist, q.venueID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"venue_id": q.venueID,
		"removed":  removed,
	}).Warn("incidents: offline queue cleared by user")

	return removed, nil
}

// List retorna uma cópia dos incidentes na ordem da fila
func (q *Queue) List() []domain.OfflineIncident {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.OfflineIncident, 0, len(q.incidents))
	for _, incident := range q.incidents {
		out = append(out, *incident)
	}
	return out
}

// Status resume a fila para o badge de pendências
func (q *Queue) Status() domain.IncidentQueueStatus {
	status := domain.IncidentQueueStatus{VenueID: q.venueID}

	q.mu.Lock()
	for _, incident := range q.incidents {
		status.Total++
		switch incident.SyncStatus {
		case domain.SyncStatusPending:
			status.Pending++
		case domain.SyncStatusSyncing:
			status.Syncing++
		case domain.SyncStatusSynced:
			status.Synced++
		case domain.SyncStatusError:
			status.Errored++
		}
	}
	q.mu.Unlock()

	q.syncMutex.Lock()
	status.IsSyncing = q.syncRunning
	status.Online = q.online
	status.LastSyncStartedAt = q.lastSyncStartedAt
	status.LastSyncCompletedAt = q.lastSyncCompletedAt
	q.syncMutex.Unlock()

	return status
}

// IsSyncing indica se há um ciclo de sincronização em andamento
func (q *Queue) IsSyncing() bool {
	q.syncMutex.Lock()
	defer q.syncMutex.Unlock()
	return q.syncRunning
}

// pendingIDs retorna os IDs que precisam ser sincronizados, na ordem da fila
func (q *Queue) pendingIDs() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	ids := make([]string, 0, len(q.incidents))
	for _, incident := range q.incidents {
		if incident.NeedsSync() {
			ids = append(ids, incident.ID)
		}
	}
	return ids
}

// markSyncing move o incidente para syncing e persiste antes do envio
func (q *Queue) markSyncing(ctx context.Context, id string) (domain.OfflineIncident, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	incident := q.findLocked(id)
	if incident == nil || !incident.NeedsSync() {
		return domain.OfflineIncident{}, false
	}

	attemptAt := q.opts.Now()
	incident.SyncStatus = domain.SyncStatusSyncing
	incident.LastSyncAttempt = &attemptAt

	if err := q.persistLocked(ctx); err != nil {
		logrus.WithError(err).WithField("incident_id", id).Warn("incidents: failed to persist syncing state")
	}

	return *incident, true
}

// send chama o Transport isolando panics, que contam como falha da tentativa
func (q *Queue) send(ctx context.Context, incident domain.OfflineIncident) (acked bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			acked = false
			err = fmt.Errorf("transport panic: %v", r)
		}
	}()

	return q.opts.Transport.SyncIncident(ctx, incident)
}

// finishAttempt registra o resultado da tentativa; retorna true quando sincronizado
func (q *Queue) finishAttempt(ctx context.Context, id string, acked bool, syncErr error) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	logger := logrus.WithFields(logrus.Fields{
		"venue_id":    q.venueID,
		"incident_id": id,
	})

	incident := q.findLocked(id)
	if incident == nil {
		// A fila foi limpa durante o envio
		logger.Warn("incidents: incident removed while syncing, result discarded")
		return acked && syncErr == nil
	}

	if acked && syncErr == nil {
		syncedAt := q.opts.Now()
		incident.SyncStatus = domain.SyncStatusSynced
		incident.SyncedAt = &syncedAt
		incident.LastError = ""
		logger.Info("incidents: incident synced")
	} else {
		incident.SyncStatus = domain.SyncStatusError
		incident.RetryCount++
		incident.LastError = "backend did not acknowledge incident"
		if syncErr != nil {
			incident.LastError = syncErr.Error()
		}
		logger.WithFields(logrus.Fields{
			"retry_count": incident.RetryCount,
			"error":       incident.LastError,
		}).Warn("incidents: incident sync failed")
	}

	if err := q.persistLocked(ctx); err != nil {
		logger.WithError(err).Error("incidents: failed to persist sync result")
	}

	return incident.SyncStatus == domain.SyncStatusSynced
}

func (q *Queue) findLocked(id string) *domain.OfflineIncident {
	for _, incident := range q.incidents {
		if incident.ID == id {
			return incident
		}
	}
	return nil
}

// persistLocked grava a fila inteira no store. Deve ser chamado com mu travado.
func (q *Queue) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(q.incidents)
	if err != nil {
		return NewIncidentError(ErrPersist, apiErrors.ErrIncidentPersist, q.venueID, err.Error())
	}

	if err := q.store.Set(ctx, StorageKey(q.venueID), raw); err != nil {
		return NewIncidentError(ErrPersist, apiErrors.ErrIncidentPersist, q.venueID, err.Error())
	}

	return nil
}
