package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	goleak.VerifyTestMain(m)
}

// chanSource entrega os eventos de um canal
type chanSource struct {
	events chan domain.ChangeEvent
	errs   chan error
}

func newChanSource() *chanSource {
	return &chanSource{events: make(chan domain.ChangeEvent), errs: make(chan error, 1)}
}

func (s *chanSource) Receive(ctx context.Context) (domain.ChangeEvent, error) {
	select {
	case <-ctx.Done():
		return domain.ChangeEvent{}, ctx.Err()
	case err := <-s.errs:
		return domain.ChangeEvent{}, err
	case event := <-s.events:
		return event, nil
	}
}

func (s *chanSource) Close() error { return nil }

type recorder struct {
	mu     sync.Mutex
	events []domain.ChangeEvent
}

func (r *recorder) handle(event domain.ChangeEvent) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestHub_PublishRoutesByTable(t *testing.T) {
	hub := NewHub()

	budget := &recorder{}
	campaigns := &recorder{}
	all := &recorder{}

	subBudget := hub.Subscribe("budget_categories", budget.handle)
	subCampaigns := hub.Subscribe("campaigns", campaigns.handle)
	subAll := hub.Subscribe(AllTables, all.handle)
	defer subAll.Close()

	delivered := hub.Publish(domain.ChangeEvent{Table: "budget_categories", Action: domain.ChangeUpdate})
	assert.Equal(t, 2, delivered)
	assert.Equal(t, 1, budget.count())
	assert.Equal(t, 0, campaigns.count())
	assert.Equal(t, 1, all.count())
	assert.False(t, budget.events[0].ReceivedAt.IsZero())

	subBudget.Close()
	subBudget.Close()
	assert.Equal(t, 0, hub.Subscribers("budget_categories"))

	hub.Publish(domain.ChangeEvent{Table: "budget_categories", Action: domain.ChangeDelete})
	assert.Equal(t, 1, budget.count(), "assinatura encerrada não recebe eventos")

	subCampaigns.Close()
	assert.Equal(t, 0, hub.Subscribers("campaigns"))
}

func TestHub_SubscriberPanicDoesNotStopDelivery(t *testing.T) {
	hub := NewHub()
	ok := &recorder{}

	hub.Subscribe("guests", func(domain.ChangeEvent) { panic("boom") })
	hub.Subscribe("guests", ok.handle)

	assert.NotPanics(t, func() {
		hub.Publish(domain.ChangeEvent{Table: "guests", Action: domain.ChangeInsert})
	})
	assert.Equal(t, 1, ok.count())
}

func TestHub_RunStopsOnContextCancel(t *testing.T) {
	hub := NewHub()
	source := newChanSource()
	got := &recorder{}
	sub := hub.Subscribe("campaigns", got.handle)
	defer sub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- hub.Run(ctx, source)
	}()

	source.events <- domain.ChangeEvent{Table: "campaigns", Action: domain.ChangeInsert, RecordID: "c1"}
	source.errs <- errors.Join(domain.ErrMalformedChangeEvent, errors.New("bad json"))
	source.events <- domain.ChangeEvent{Table: "campaigns", Action: domain.ChangeUpdate, RecordID: "c1"}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run não terminou após o cancelamento")
	}

	assert.Equal(t, 2, got.count(), "evento malformado é descartado sem parar o consumo")
}

func TestHub_RunReturnsSourceErrors(t *testing.T) {
	hub := NewHub()

	t.Run("origem fechada", func(t *testing.T) {
		source := newChanSource()
		source.errs <- domain.ErrChangeSourceClosed
		assert.NoError(t, hub.Run(context.Background(), source))
	})

	t.Run("erro de leitura", func(t *testing.T) {
		source := newChanSource()
		source.errs <- errors.New("connection lost")
		err := hub.Run(context.Background(), source)
		require.Error(t, err)
		assert.Equal(t, "connection lost", err.Error())
	})
}

func TestGroup_Close(t *testing.T) {
	hub := NewHub()
	group := &Group{}

	group.Add(hub.Subscribe("a", func(domain.ChangeEvent) {}))
	group.Add(hub.Subscribe("b", func(domain.ChangeEvent) {}))
	assert.Equal(t, 1, hub.Subscribers("a"))

	group.Close()
	group.Close()

	assert.Equal(t, 0, hub.Subscribers("a"))
	assert.Equal(t, 0, hub.Subscribers("b"))
}
