package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta)
	assert.InDelta(t, want.Y, got.Y, delta)
}

func TestViewport_ScreenWorldRoundTrip(t *testing.T) {
	v := Viewport{Scale: 2, OffsetX: 30, OffsetY: -10, MinScale: 0.5, MaxScale: 4}

	world := Point{X: 12.5, Y: 40}
	screen := v.WorldToScreen(world)

	assertPoint(t, Point{X: 55, Y: 70}, screen)
	assertPoint(t, world, v.ScreenToWorld(screen))
}

func TestViewport_Pan(t *testing.T) {
	v := NewViewport().Pan(15, -5).Pan(5, 5)

	assert.Equal(t, 20.0, v.OffsetX)
	assert.Equal(t, 0.0, v.OffsetY)
	assert.Equal(t, 1.0, v.Scale)
}

func TestViewport_ZoomAt(t *testing.T) {
	tests := []struct {
		name      string
		viewport  Viewport
		focal     Point
		factor    float64
		wantScale float64
	}{
		{name: "zoom in", viewport: NewViewport(), focal: Point{X: 100, Y: 50}, factor: 2, wantScale: 2},
		{name: "zoom out", viewport: Viewport{Scale: 2, OffsetX: 10, OffsetY: 10}, focal: Point{X: 0, Y: 0}, factor: 0.5, wantScale: 1},
		{name: "limite máximo", viewport: NewViewport(), focal: Point{X: 20, Y: 20}, factor: 100, wantScale: DefaultMaxScale},
		{name: "limite mínimo", viewport: NewViewport(), focal: Point{X: 20, Y: 20}, factor: 0.01, wantScale: DefaultMinScale},
		{name: "fator inválido", viewport: NewViewport(), focal: Point{X: 20, Y: 20}, factor: 0, wantScale: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.viewport.Normalize().ScreenToWorld(tt.focal)

			got := tt.viewport.ZoomAt(tt.focal, tt.factor)

			assert.InDelta(t, tt.wantScale, got.Scale, delta)
			// O ponto do mundo sob o foco não se move
			assertPoint(t, before, got.ScreenToWorld(tt.focal))
		})
	}
}

func TestViewport_Pinch(t *testing.T) {
	start := [2]Point{{X: 100, Y: 100}, {X: 200, Y: 100}}

	t.Run("afastar os dedos dobra a escala", func(t *testing.T) {
		v := NewViewport()
		current := [2]Point{{X: 50, Y: 100}, {X: 250, Y: 100}}

		got := v.Pinch(start, current)

		assert.InDelta(t, 2, got.Scale, delta)
		assertPoint(t, v.ScreenToWorld(Point{X: 150, Y: 100}), got.ScreenToWorld(Point{X: 150, Y: 100}))
	})

	t.Run("arrastar com dois dedos translada", func(t *testing.T) {
		v := NewViewport()
		current := [2]Point{{X: 130, Y: 120}, {X: 230, Y: 120}}

		got := v.Pinch(start, current)

		assert.InDelta(t, 1, got.Scale, delta)
		assert.InDelta(t, 30, got.OffsetX, delta)
		assert.InDelta(t, 20, got.OffsetY, delta)
	})

	t.Run("dedos sobrepostos mantêm a escala", func(t *testing.T) {
		v := NewViewport()
		got := v.Pinch([2]Point{{X: 10, Y: 10}, {X: 10, Y: 10}}, [2]Point{{X: 20, Y: 20}, {X: 40, Y: 20}})
		assert.InDelta(t, 1, got.Scale, delta)
	})
}

func TestViewport_Fit(t *testing.T) {
	screen := Rect{Width: 800, Height: 600}

	t.Run("enquadra e centraliza", func(t *testing.T) {
		bounds := Rect{X: 0, Y: 0, Width: 400, Height: 200}

		got := NewViewport().Fit(bounds, screen, 0)

		assert.InDelta(t, 2, got.Scale, delta)
		assertPoint(t, Point{X: 400, Y: 300}, got.WorldToScreen(bounds.Center()))
	})

	t.Run("respeita o padding", func(t *testing.T) {
		bounds := Rect{X: 100, Y: 100, Width: 700, Height: 100}

		got := NewViewport().Fit(bounds, screen, 50)

		assert.InDelta(t, 1, got.Scale, delta)
		assertPoint(t, Point{X: 400, Y: 300}, got.WorldToScreen(bounds.Center()))
	})

	t.Run("conteúdo vazio usa escala 1", func(t *testing.T) {
		got := NewViewport().Fit(Rect{}, screen, 10)
		assert.InDelta(t, 1, got.Scale, delta)
	})
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}

	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.False(t, r.Contains(Point{X: 31, Y: 15}))

	assert.True(t, r.Intersects(Rect{X: 25, Y: 15, Width: 100, Height: 100}))
	assert.False(t, r.Intersects(Rect{X: 40, Y: 0, Width: 5, Height: 5}))

	assert.Equal(t, Rect{X: 0, Y: 10, Width: 30, Height: 15}, r.Union(Rect{X: 0, Y: 20, Width: 5, Height: 5}))
}

func TestViewport_Normalize(t *testing.T) {
	got := Viewport{Scale: 10, MinScale: 2, MaxScale: 1}.Normalize()

	assert.Equal(t, 1.0, got.MinScale)
	assert.Equal(t, 2.0, got.MaxScale)
	assert.Equal(t, 2.0, got.Scale)
}
