package seating

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/infrastructure/repository"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/realtime"
)

// Tabelas do backend que alteram o mapa de mesas
const (
	TableSeatingTables = "seating_tables"
	TableGuests        = "guests"
)

type Seater interface {
	GetLayout(ctx context.Context, eventID string) (*domain.SeatingLayout, error)
	Assign(ctx context.Context, eventID, guestID, tableID string) (*domain.SeatingLayout, error)
	Unassign(ctx context.Context, eventID, guestID string) (*domain.SeatingLayout, error)
}

// Service mantém o layout de cada evento em memória. Alocações alteram o layout
// local antes de gravar no backend e são desfeitas se a gravação falhar.
type Service struct {
	seatingRepository repository.SeatingRepository

	mu      sync.Mutex
	layouts map[string]*domain.SeatingLayout
}

func NewService(seatingRepo repository.SeatingRepository) *Service {
	return &Service{
		seatingRepository: seatingRepo,
		layouts:           make(map[string]*domain.SeatingLayout),
	}
}

// GetLayout busca mesas e convidados no backend e substitui o layout em memória
func (s *Service) GetLayout(ctx context.Context, eventID string) (*domain.SeatingLayout, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, ErrEventIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	layout, err := s.fetch(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.layouts[eventID] = layout

	return layout.Clone(), nil
}

func (s *Service) fetch(ctx context.Context, eventID string) (*domain.SeatingLayout, error) {
	var (
		tables    []*domain.SeatingTable
		guests    []*domain.Guest
		tablesErr error
		guestsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		tables, tablesErr = s.seatingRepository.ListTables(ctx, eventID)
	}()

	go func() {
		defer wg.Done()
		guests, guestsErr = s.seatingRepository.ListGuests(ctx, eventID)
	}()

	wg.Wait()

	if tablesErr != nil {
		logrus.WithError(tablesErr).WithField("event_id", eventID).Error("seating: failed to load tables")
		return nil, fmt.Errorf("erro ao buscar mesas: %w", tablesErr)
	}

	if guestsErr != nil {
		logrus.WithError(guestsErr).WithField("event_id", eventID).Error("seating: failed to load guests")
		return nil, fmt.Errorf("erro ao buscar convidados: %w", guestsErr)
	}

	return buildLayout(eventID, tables, guests), nil
}

// buildLayout preenche GuestIDs de cada mesa a partir de Guest.TableID
func buildLayout(eventID string, tables []*domain.SeatingTable, guests []*domain.Guest) *domain.SeatingLayout {
	layout := &domain.SeatingLayout{
		EventID: eventID,
		Tables:  make([]domain.SeatingTable, 0, len(tables)),
		Guests:  make([]domain.Guest, 0, len(guests)),
	}

	for _, table := range tables {
		t := *table
		t.GuestIDs = make([]string, 0, t.Capacity)
		layout.Tables = append(layout.Tables, t)
	}

	for _, guest := range guests {
		g := *guest
		if g.TableID != nil {
			if idx := layout.TableIndex(*g.TableID); idx >= 0 {
				layout.Tables[idx].GuestIDs = append(layout.Tables[idx].GuestIDs, g.ID)
			} else {
				logrus.WithFields(logrus.Fields{
					"event_id": eventID,
					"guest_id": g.ID,
					"table_id": *g.TableID,
				}).Warn("seating: guest assigned to unknown table")
				g.TableID = nil
			}
		}
		layout.Guests = append(layout.Guests, g)
	}

	return layout
}

// Assign senta o convidado na mesa, retirando-o da mesa anterior se houver
func (s *Service) Assign(ctx context.Context, eventID, guestID, tableID string) (*domain.SeatingLayout, error) {
	return s.move(ctx, eventID, guestID, &tableID)
}

// Unassign retira o convidado da mesa atual
func (s *Service) Unassign(ctx context.Context, eventID, guestID string) (*domain.SeatingLayout, error) {
	return s.move(ctx, eventID, guestID, nil)
}

func (s *Service) move(ctx context.Context, eventID, guestID string, tableID *string) (*domain.SeatingLayout, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, ErrEventIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	layout, ok := s.layouts[eventID]
	if !ok {
		fetched, err := s.fetch(ctx, eventID)
		if err != nil {
			return nil, err
		}
		layout = fetched
		s.layouts[eventID] = layout
	}

	guestIdx := layout.GuestIndex(guestID)
	if guestIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGuestNotFound, guestID)
	}
	guest := layout.Guests[guestIdx]

	if tableID != nil {
		tableIdx := layout.TableIndex(*tableID)
		if tableIdx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, *tableID)
		}

		if guest.TableID != nil && *guest.TableID == *tableID {
			return layout.Clone(), nil
		}

		if guest.RSVPStatus == domain.RSVPDeclined {
			return nil, fmt.Errorf("%w: %s", ErrGuestDeclined, guest.Name)
		}

		if layout.Tables[tableIdx].Available() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrTableFull, layout.Tables[tableIdx].Name)
		}
	} else if guest.TableID == nil {
		return layout.Clone(), nil
	}

	previous := layout.Clone()
	applyMove(layout, guestIdx, tableID)

	if err := s.seatingRepository.UpdateGuestTable(ctx, eventID, guestID, tableID); err != nil {
		s.layouts[eventID] = previous
		logrus.WithError(err).WithFields(logrus.Fields{
			"event_id": eventID,
			"guest_id": guestID,
		}).Error("seating: failed to persist guest table, change rolled back")
		return nil, fmt.Errorf("%w: %s", ErrPersist, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"event_id": eventID,
		"guest_id": guestID,
		"table_id": tableID,
	}).Debug("seating: guest table updated")

	return layout.Clone(), nil
}

func applyMove(layout *domain.SeatingLayout, guestIdx int, tableID *string) {
	guest := &layout.Guests[guestIdx]

	if guest.TableID != nil {
		if idx := layout.TableIndex(*guest.TableID); idx >= 0 {
			layout.Tables[idx].GuestIDs = removeID(layout.Tables[idx].GuestIDs, guest.ID)
		}
	}

	if tableID == nil {
		guest.TableID = nil
		return
	}

	id := *tableID
	guest.TableID = &id
	idx := layout.TableIndex(id)
	layout.Tables[idx].GuestIDs = append(layout.Tables[idx].GuestIDs, guest.ID)
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Forget descarta o layout em memória do evento; o próximo acesso busca no backend
func (s *Service) Forget(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.layouts[eventID]
	delete(s.layouts, eventID)
	return ok
}

// Watch descarta o layout do evento quando mesas ou convidados mudam no backend
func (s *Service) Watch(hub *realtime.Hub) *realtime.Group {
	group := &realtime.Group{}

	handler := func(event domain.ChangeEvent) {
		var scope domain.ChangeScope
		if len(event.Payload) > 0 {
			if err := json.Unmarshal(event.Payload, &scope); err != nil {
				logrus.WithError(err).WithField("table", event.Table).Warn("seating: change event without scope")
			}
		}

		if scope.EventID == "" {
			s.mu.Lock()
			s.layouts = make(map[string]*domain.SeatingLayout)
			s.mu.Unlock()
			return
		}

		s.Forget(scope.EventID)
	}

	group.Add(hub.Subscribe(TableSeatingTables, handler))
	group.Add(hub.Subscribe(TableGuests, handler))

	return group
}
