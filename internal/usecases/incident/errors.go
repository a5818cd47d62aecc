package incident

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrVenueIDRequired = errors.New("venue ID is required")
	ErrInvalidReport   = errors.New("invalid incident report")

	// Erros do armazenamento local
	ErrPersist      = errors.New("failed to persist offline queue")
	ErrLoad         = errors.New("failed to load offline queue")
	ErrCorruptQueue = errors.New("offline queue data is corrupt")

	// Erros de sincronização
	ErrNoTransport = errors.New("no sync transport configured")
	ErrGenerateID  = errors.New("error generating incident ID")
)

// IncidentError é um erro com contexto adicional da fila de um local
type IncidentError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	VenueID string // Local da fila envolvida
	Details string // Detalhes adicionais
}

func (e *IncidentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IncidentError) Unwrap() error {
	return e.Err
}

// NewIncidentError cria um novo IncidentError
func NewIncidentError(err error, code string, venueID string, details string) *IncidentError {
	return &IncidentError{
		Err:     err,
		Code:    code,
		VenueID: venueID,
		Details: details,
	}
}
