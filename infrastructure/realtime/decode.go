// Package realtime implementa as origens de eventos de alteração do backend.
package realtime

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeChangeEvent lê o payload {"table","action","id","record"} publicado pelo
// trigger do banco ou pelo conector do Kafka
func DecodeChangeEvent(raw []byte, receivedAt time.Time) (domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("%w: %s", domain.ErrMalformedChangeEvent, err.Error())
	}

	event.Action = domain.ChangeAction(strings.ToUpper(string(event.Action)))
	event.ReceivedAt = receivedAt

	if err := event.Validate(); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("%w: %s", domain.ErrMalformedChangeEvent, err.Error())
	}

	return event, nil
}
