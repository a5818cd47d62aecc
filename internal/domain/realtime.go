package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrChangeSourceClosed indica que a origem de eventos foi fechada
	ErrChangeSourceClosed = errors.New("realtime source closed")
	// ErrMalformedChangeEvent é um evento que não segue o formato esperado
	ErrMalformedChangeEvent = errors.New("malformed change event")
)

type ChangeAction string

const (
	ChangeInsert ChangeAction = "INSERT"
	ChangeUpdate ChangeAction = "UPDATE"
	ChangeDelete ChangeAction = "DELETE"
)

// ChangeEvent é uma notificação de alteração em uma tabela do backend
type ChangeEvent struct {
	Table      string              `json:"table"`
	Action     ChangeAction        `json:"action"`
	RecordID   string              `json:"id"`
	Payload    jsoniter.RawMessage `json:"record,omitempty"`
	ReceivedAt time.Time           `json:"-"`
}

func (e *ChangeEvent) Validate() error {
	if strings.TrimSpace(e.Table) == "" {
		return fmt.Errorf("evento sem tabela")
	}

	switch e.Action {
	case ChangeInsert, ChangeUpdate, ChangeDelete:
	default:
		return fmt.Errorf("ação desconhecida: %q", e.Action)
	}

	return nil
}

// ChangeScope são os campos de escopo presentes nos registros alterados
type ChangeScope struct {
	OrganizationID string `json:"organization_id"`
	ClientID       string `json:"client_id"`
	EventID        string `json:"event_id"`
}
