package domain

import (
	"fmt"
	"strings"
	"time"
)

// SyncStatus é o estado de sincronização de um incidente da fila offline.
// Transições válidas: pending|error -> syncing -> synced|error.
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusError   SyncStatus = "error"
)

type IncidentType string

const (
	IncidentTypeMedical  IncidentType = "medical"
	IncidentTypeSecurity IncidentType = "security"
	IncidentTypeFire     IncidentType = "fire"
	IncidentTypeWeather  IncidentType = "weather"
	IncidentTypeGuest    IncidentType = "guest"
	IncidentTypeVendor   IncidentType = "vendor"
	IncidentTypeOther    IncidentType = "other"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var validIncidentTypes = map[IncidentType]bool{
	IncidentTypeMedical:  true,
	IncidentTypeSecurity: true,
	IncidentTypeFire:     true,
	IncidentTypeWeather:  true,
	IncidentTypeGuest:    true,
	IncidentTypeVendor:   true,
	IncidentTypeOther:    true,
}

var validSeverities = map[Severity]bool{
	SeverityLow:      true,
	SeverityMedium:   true,
	SeverityHigh:     true,
	SeverityCritical: true,
}

// Coordinates vem da geolocalização do dispositivo no momento do relato
type Coordinates struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy,omitempty"`
}

// IncidentReport é o relato enviado pelo dispositivo, antes de entrar na fila
type IncidentReport struct {
	Type        IncidentType `json:"type"`
	Severity    Severity     `json:"severity"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	ReportedBy  string       `json:"reported_by"`
}

// Validate verifica os campos obrigatórios do relato
func (r *IncidentReport) Validate() error {
	if !validIncidentTypes[r.Type] {
		return fmt.Errorf("tipo de incidente inválido: %q", r.Type)
	}

	if !validSeverities[r.Severity] {
		return fmt.Errorf("severidade inválida: %q", r.Severity)
	}

	if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("título ou descrição é obrigatório")
	}

	if r.Coordinates != nil {
		if r.Coordinates.Lat < -90 || r.Coordinates.Lat > 90 || r.Coordinates.Lng < -180 || r.Coordinates.Lng > 180 {
			return fmt.Errorf("coordenadas fora do intervalo válido")
		}
	}

	return nil
}

// OfflineIncident é um relato guardado na fila local até a confirmação do backend
type OfflineIncident struct {
	ID              string       `json:"id"`
	VenueID         string       `json:"venue_id"`
	Type            IncidentType `json:"type"`
	Severity        Severity     `json:"severity"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Location        string       `json:"location,omitempty"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	ReportedBy      string       `json:"reported_by,omitempty"`
	Timestamp       time.Time    `json:"timestamp"`
	SyncStatus      SyncStatus   `json:"sync_status"`
	RetryCount      int          `json:"retry_count"`
	LastSyncAttempt *time.Time   `json:"last_sync_attempt,omitempty"`
	SyncedAt        *time.Time   `json:"synced_at,omitempty"`
	LastError       string       `json:"last_error,omitempty"`
}

// NeedsSync indica se o incidente entra no próximo ciclo de sincronização
func (i *OfflineIncident) NeedsSync() bool {
	return i.SyncStatus == SyncStatusPending || i.SyncStatus == SyncStatusError
}

// SyncedBefore indica se o incidente está sincronizado há mais tempo que cutoff
func (i *OfflineIncident) SyncedBefore(cutoff time.Time) bool {
	if i.SyncStatus != SyncStatusSynced {
		return false
	}

	reference := i.Timestamp
	if i.SyncedAt != nil {
		reference = *i.SyncedAt
	}

	return reference.Before(cutoff)
}

// IncidentQueueStatus resume a fila de um local para o badge de pendências
type IncidentQueueStatus struct {
	VenueID             string     `json:"venue_id"`
	Total               int        `json:"total"`
	Pending             int        `json:"pending"`
	Syncing             int        `json:"syncing"`
	Synced              int        `json:"synced"`
	Errored             int        `json:"errored"`
	IsSyncing           bool       `json:"is_syncing"`
	Online              bool       `json:"online"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
}

// SyncTrigger identifica a origem de um ciclo de sincronização
type SyncTrigger string

const (
	SyncTriggerManual       SyncTrigger = "manual"
	SyncTriggerConnectivity SyncTrigger = "connectivity"
	SyncTriggerCLI          SyncTrigger = "cli"
)

// SyncResult resume um ciclo de sincronização
type SyncResult struct {
	VenueID   string      `json:"venue_id"`
	Trigger   SyncTrigger `json:"trigger"`
	Skipped   bool        `json:"skipped"`
	Attempted int         `json:"attempted"`
	Synced    int         `json:"synced"`
	Failed    int         `json:"failed"`
	Pruned    int         `json:"pruned"`
}

// IncidentListResponse é a resposta da listagem da fila
type IncidentListResponse struct {
	Status    IncidentQueueStatus `json:"status"`
	Incidents []OfflineIncident   `json:"incidents"`
}
