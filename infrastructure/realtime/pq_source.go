package realtime

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	listenerPingInterval = 90 * time.Second
)

// PQSource escuta um canal LISTEN/NOTIFY do Postgres
type PQSource struct {
	listener *pq.Listener
	channel  string
	now      func() time.Time
}

// NewPQSource abre um listener dedicado e executa LISTEN no canal
func NewPQSource(dsn, channel string) (*PQSource, error) {
	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logrus.WithError(err).WithField("event", ev).Warn("realtime: postgres listener event")
		}
	})

	if err := listener.Listen(channel); err != nil {
		listener.Close()
		return nil, errors.Wrapf(err, "realtime: LISTEN %s", channel)
	}

	return &PQSource{listener: listener, channel: channel, now: time.Now}, nil
}

func (s *PQSource) Receive(ctx context.Context) (domain.ChangeEvent, error) {
	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return domain.ChangeEvent{}, ctx.Err()

		case n, ok := <-s.listener.Notify:
			if !ok {
				return domain.ChangeEvent{}, domain.ErrChangeSourceClosed
			}
			if n == nil {
				// Conexão restabelecida; notificações do intervalo podem ter sido perdidas
				logrus.WithField("channel", s.channel).Info("realtime: postgres listener reconnected")
				continue
			}
			return DecodeChangeEvent([]byte(n.Extra), s.now())

		case <-ticker.C:
			if err := s.listener.Ping(); err != nil {
				logrus.WithError(err).Warn("realtime: postgres listener ping failed")
			}
		}
	}
}

func (s *PQSource) Close() error {
	return s.listener.Close()
}
