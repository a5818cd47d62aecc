// Package realtime distribui notificações de alteração de tabelas aos assinantes.
//
// Toda assinatura precisa ser encerrada com Close; o Hub não guarda referências
// a assinaturas encerradas.
package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
)

// AllTables recebe eventos de qualquer tabela
const AllTables = "*"

// Source entrega os eventos de uma origem (LISTEN/NOTIFY, Kafka)
type Source interface {
	Receive(ctx context.Context) (domain.ChangeEvent, error)
	Close() error
}

type Handler func(domain.ChangeEvent)

type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]Handler
	now    func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[uint64]Handler),
		now:  time.Now,
	}
}

// Subscription é uma assinatura ativa de uma tabela
type Subscription struct {
	hub   *Hub
	table string
	id    uint64
	once  sync.Once
}

// Subscribe registra handler para os eventos da tabela (ou AllTables)
func (h *Hub) Subscribe(table string, handler Handler) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	if h.subs[table] == nil {
		h.subs[table] = make(map[uint64]Handler)
	}
	h.subs[table][id] = handler

	return &Subscription{hub: h, table: table, id: id}
}

// Close remove a assinatura. Chamadas repetidas não têm efeito.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()

		delete(s.hub.subs[s.table], s.id)
		if len(s.hub.subs[s.table]) == 0 {
			delete(s.hub.subs, s.table)
		}
	})
}

// Subscribers retorna quantas assinaturas ativas existem para a tabela
func (h *Hub) Subscribers(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[table])
}

// Publish entrega o evento, em sequência, aos assinantes da tabela e de AllTables
func (h *Hub) Publish(event domain.ChangeEvent) int {
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = h.now()
	}

	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs[event.Table])+len(h.subs[AllTables]))
	for _, handler := range h.subs[event.Table] {
		handlers = append(handlers, handler)
	}
	for _, handler := range h.subs[AllTables] {
		handlers = append(handlers, handler)
	}
	h.mu.RUnlock()

	for _, handler := range handlers {
		deliver(handler, event)
	}

	return len(handlers)
}

func deliver(handler Handler, event domain.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"table": event.Table,
				"panic": r,
			}).Error("realtime: subscriber panicked")
		}
	}()

	handler(event)
}

// Run consome a origem até o contexto ser cancelado ou a origem ser fechada.
// Eventos malformados são descartados.
func (h *Hub) Run(ctx context.Context, source Source) error {
	logrus.Info("realtime: consuming change events")

	for {
		event, err := source.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, domain.ErrChangeSourceClosed) {
				logrus.Info("realtime: change feed stopped")
				return nil
			}
			if errors.Is(err, domain.ErrMalformedChangeEvent) {
				logrus.WithError(err).Warn("realtime: discarding malformed event")
				continue
			}
			return err
		}

		delivered := h.Publish(event)
		logrus.WithFields(logrus.Fields{
			"table":       event.Table,
			"action":      event.Action,
			"record_id":   event.RecordID,
			"subscribers": delivered,
		}).Debug("realtime: change event delivered")
	}
}

// Group agrupa assinaturas encerradas juntas no shutdown
type Group struct {
	mu   sync.Mutex
	subs []*Subscription
}

func (g *Group) Add(sub *Subscription) {
	g.mu.Lock()
	g.subs = append(g.subs, sub)
	g.mu.Unlock()
}

func (g *Group) Close() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}
