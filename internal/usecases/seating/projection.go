package seating

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/wedsync-venue-api/internal/domain"
	"github.com/vfg2006/wedsync-venue-api/pkg/gesture"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func tableRect(t domain.SeatingTable) gesture.Rect {
	return gesture.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// Project posiciona as mesas na tela; screen é a área visível em pixels
func Project(layout *domain.SeatingLayout, viewport gesture.Viewport, screen gesture.Rect) []domain.ProjectedTable {
	projected := make([]domain.ProjectedTable, 0)
	if layout == nil {
		return projected
	}

	for _, table := range layout.Tables {
		rect := viewport.RectToScreen(tableRect(table))
		projected = append(projected, domain.ProjectedTable{
			SeatingTable: table,
			ScreenX:      rect.X,
			ScreenY:      rect.Y,
			ScreenWidth:  rect.Width,
			ScreenHeight: rect.Height,
			Visible:      rect.Intersects(screen),
			Occupied:     len(table.GuestIDs),
			Available:    table.Available(),
		})
	}

	return projected
}

// TableAt retorna a mesa sob o ponto da tela. Mesas redondas usam a elipse
// inscrita; com sobreposição vence a última desenhada.
func TableAt(layout *domain.SeatingLayout, viewport gesture.Viewport, point gesture.Point) (*domain.SeatingTable, bool) {
	if layout == nil {
		return nil, false
	}

	world := viewport.ScreenToWorld(point)

	for i := len(layout.Tables) - 1; i >= 0; i-- {
		table := layout.Tables[i]
		if hit(table, world) {
			return &table, true
		}
	}

	return nil, false
}

func hit(table domain.SeatingTable, p gesture.Point) bool {
	rect := tableRect(table)
	if !rect.Contains(p) {
		return false
	}

	if table.Shape != domain.TableShapeRound {
		return true
	}

	rx, ry := rect.Width/2, rect.Height/2
	if rx == 0 || ry == 0 {
		return false
	}
	center := rect.Center()
	dx := (p.X - center.X) / rx
	dy := (p.Y - center.Y) / ry

	return dx*dx+dy*dy <= 1
}

// Bounds retorna o retângulo que contém todas as mesas, usado para enquadrar o mapa
func Bounds(layout *domain.SeatingLayout) gesture.Rect {
	if layout == nil || len(layout.Tables) == 0 {
		return gesture.Rect{}
	}

	bounds := tableRect(layout.Tables[0])
	for _, table := range layout.Tables[1:] {
		bounds = bounds.Union(tableRect(table))
	}

	return bounds
}
