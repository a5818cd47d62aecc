package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

const incidentsPath = "/api/incidents"

type incidentAck struct {
	ID       string `json:"id"`
	Received bool   `json:"received"`
}

// SyncIncident envia um incidente da fila offline. 409 significa que o backend
// já tem o registro e conta como confirmação.
func (c *Client) SyncIncident(ctx context.Context, incident domain.OfflineIncident) (bool, error) {
	var ack incidentAck
	_, err := c.do(ctx, http.MethodPost, incidentsPath, nil, incident, &ack)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusConflict {
			return true, nil
		}
		return false, err
	}

	if ack.ID != "" && ack.ID != incident.ID {
		return false, errors.New("backend: confirmação com ID diferente do incidente enviado")
	}

	return ack.Received, nil
}
