package domain

type TableShape string

const (
	TableShapeRound     TableShape = "round"
	TableShapeRectangle TableShape = "rectangle"
	TableShapeSquare    TableShape = "square"
)

type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
	RSVPMaybe    RSVPStatus = "maybe"
)

// SeatingTable é uma mesa do mapa do evento, em coordenadas do salão
type SeatingTable struct {
	ID       string     `json:"id"`
	EventID  string     `json:"event_id"`
	Name     string     `json:"name"`
	Shape    TableShape `json:"shape"`
	Capacity int        `json:"capacity"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	GuestIDs []string   `json:"guest_ids"`
}

// Available retorna os lugares livres da mesa
func (t *SeatingTable) Available() int {
	if free := t.Capacity - len(t.GuestIDs); free > 0 {
		return free
	}
	return 0
}

func (t *SeatingTable) HasGuest(guestID string) bool {
	for _, id := range t.GuestIDs {
		if id == guestID {
			return true
		}
	}
	return false
}

type Guest struct {
	ID                  string     `json:"id"`
	EventID             string     `json:"event_id"`
	Name                string     `json:"name"`
	Category            string     `json:"category"`
	RSVPStatus          RSVPStatus `json:"rsvp_status"`
	DietaryRestrictions []string   `json:"dietary_restrictions"`
	TableID             *string    `json:"table_id"`
}

// SeatingLayout é o mapa de mesas de um evento com os convidados
type SeatingLayout struct {
	EventID string         `json:"event_id"`
	Tables  []SeatingTable `json:"tables"`
	Guests  []Guest        `json:"guests"`
}

func (l *SeatingLayout) TableIndex(tableID string) int {
	for i := range l.Tables {
		if l.Tables[i].ID == tableID {
			return i
		}
	}
	return -1
}

func (l *SeatingLayout) GuestIndex(guestID string) int {
	for i := range l.Guests {
		if l.Guests[i].ID == guestID {
			return i
		}
	}
	return -1
}

// Unassigned retorna os convidados sem mesa
func (l *SeatingLayout) Unassigned() []Guest {
	out := make([]Guest, 0)
	for _, g := range l.Guests {
		if g.TableID == nil {
			out = append(out, g)
		}
	}
	return out
}

// Clone copia o layout, incluindo as listas internas
func (l *SeatingLayout) Clone() *SeatingLayout {
	clone := &SeatingLayout{
		EventID: l.EventID,
		Tables:  make([]SeatingTable, len(l.Tables)),
		Guests:  make([]Guest, len(l.Guests)),
	}

	for i, t := range l.Tables {
		t.GuestIDs = append([]string(nil), t.GuestIDs...)
		clone.Tables[i] = t
	}

	for i, g := range l.Guests {
		g.DietaryRestrictions = append([]string(nil), g.DietaryRestrictions...)
		if g.TableID != nil {
			tableID := *g.TableID
			g.TableID = &tableID
		}
		clone.Guests[i] = g
	}

	return clone
}

// ProjectedTable é a mesa posicionada na tela para o viewport atual
type ProjectedTable struct {
	SeatingTable
	ScreenX      float64 `json:"screen_x"`
	ScreenY      float64 `json:"screen_y"`
	ScreenWidth  float64 `json:"screen_width"`
	ScreenHeight float64 `json:"screen_height"`
	Visible      bool    `json:"visible"`
	Occupied     int     `json:"occupied"`
	Available    int     `json:"available"`
}
