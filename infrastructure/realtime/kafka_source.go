package realtime

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

// MessageReader é a parte do kafka.Reader usada pela origem
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// KafkaSource consome o tópico com as alterações replicadas do banco
type KafkaSource struct {
	reader MessageReader
	now    func() time.Time
}

func NewKafkaSource(brokers []string, topic, groupID string) *KafkaSource {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})

	return NewKafkaSourceFromReader(reader)
}

func NewKafkaSourceFromReader(reader MessageReader) *KafkaSource {
	return &KafkaSource{reader: reader, now: time.Now}
}

func (s *KafkaSource) Receive(ctx context.Context) (domain.ChangeEvent, error) {
	msg, err := s.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.ChangeEvent{}, domain.ErrChangeSourceClosed
		}
		return domain.ChangeEvent{}, errors.Wrap(err, "realtime: kafka read")
	}

	receivedAt := msg.Time
	if receivedAt.IsZero() {
		receivedAt = s.now()
	}

	return DecodeChangeEvent(msg.Value, receivedAt)
}

func (s *KafkaSource) Close() error {
	return s.reader.Close()
}
