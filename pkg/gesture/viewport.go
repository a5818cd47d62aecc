// Package gesture contém a matemática de transformação do viewport usada pelo
// mapa de mesas: arrastar, zoom com ponto focal e pinça com dois dedos.
//
// Coordenadas de tela = mundo * Scale + Offset.
package gesture

import "math"

const (
	DefaultMinScale = 0.25
	DefaultMaxScale = 4
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance retorna a distância euclidiana até o ponto
func (p Point) Distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Midpoint retorna o ponto médio entre os dois pontos
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects informa se os retângulos se sobrepõem; bordas encostadas contam
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width && r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Union retorna o menor retângulo que contém os dois
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.Width, o.X+o.Width)
	maxY := math.Max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Viewport é a transformação entre o mundo (salão) e a tela.
// Os métodos não alteram o receptor: retornam um novo Viewport.
type Viewport struct {
	Scale    float64 `json:"scale"`
	OffsetX  float64 `json:"offset_x"`
	OffsetY  float64 `json:"offset_y"`
	MinScale float64 `json:"min_scale"`
	MaxScale float64 `json:"max_scale"`
}

// NewViewport cria um viewport sem zoom e sem deslocamento
func NewViewport() Viewport {
	return Viewport{Scale: 1, MinScale: DefaultMinScale, MaxScale: DefaultMaxScale}
}

// Normalize preenche limites ausentes e aplica o clamp na escala atual
func (v Viewport) Normalize() Viewport {
	if v.MinScale <= 0 {
		v.MinScale = DefaultMinScale
	}
	if v.MaxScale <= 0 {
		v.MaxScale = DefaultMaxScale
	}
	if v.MaxScale < v.MinScale {
		v.MinScale, v.MaxScale = v.MaxScale, v.MinScale
	}
	if v.Scale == 0 || math.IsNaN(v.Scale) {
		v.Scale = 1
	}
	v.Scale = v.clamp(v.Scale)
	return v
}

func (v Viewport) clamp(scale float64) float64 {
	return math.Max(v.MinScale, math.Min(v.MaxScale, scale))
}

// Pan desloca a tela em (dx, dy) pixels
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// ZoomAt multiplica a escala por factor mantendo o ponto do mundo sob focal fixo
func (v Viewport) ZoomAt(focal Point, factor float64) Viewport {
	v = v.Normalize()
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return v
	}

	world := v.ScreenToWorld(focal)
	v.Scale = v.clamp(v.Scale * factor)
	v.OffsetX = focal.X - world.X*v.Scale
	v.OffsetY = focal.Y - world.Y*v.Scale
	return v
}

// Pinch aplica um gesto de pinça a partir do viewport do início do gesto.
// A escala segue a razão entre as distâncias dos dedos e o ponto do mundo sob
// o ponto médio inicial acompanha o ponto médio atual.
func (v Viewport) Pinch(start, current [2]Point) Viewport {
	v = v.Normalize()

	startDistance := start[0].Distance(start[1])
	currentDistance := current[0].Distance(current[1])

	startMid := Midpoint(start[0], start[1])
	currentMid := Midpoint(current[0], current[1])

	world := v.ScreenToWorld(startMid)
	if startDistance > 0 && currentDistance > 0 {
		v.Scale = v.clamp(v.Scale * currentDistance / startDistance)
	}

	v.OffsetX = currentMid.X - world.X*v.Scale
	v.OffsetY = currentMid.Y - world.Y*v.Scale
	return v
}

func (v Viewport) ScreenToWorld(p Point) Point {
	scale := v.Scale
	if scale == 0 {
		scale = 1
	}
	return Point{X: (p.X - v.OffsetX) / scale, Y: (p.Y - v.OffsetY) / scale}
}

func (v Viewport) WorldToScreen(p Point) Point {
	return Point{X: p.X*v.Scale + v.OffsetX, Y: p.Y*v.Scale + v.OffsetY}
}

// RectToScreen projeta um retângulo do mundo na tela
func (v Viewport) RectToScreen(r Rect) Rect {
	origin := v.WorldToScreen(Point{X: r.X, Y: r.Y})
	return Rect{X: origin.X, Y: origin.Y, Width: r.Width * v.Scale, Height: r.Height * v.Scale}
}

// Fit enquadra bounds na tela com padding em pixels, centralizando o conteúdo
func (v Viewport) Fit(bounds, screen Rect, padding float64) Viewport {
	v = v.Normalize()

	availableW := screen.Width - 2*padding
	availableH := screen.Height - 2*padding

	if bounds.Width > 0 && bounds.Height > 0 && availableW > 0 && availableH > 0 {
		v.Scale = v.clamp(math.Min(availableW/bounds.Width, availableH/bounds.Height))
	} else {
		v.Scale = v.clamp(1)
	}

	screenCenter := screen.Center()
	boundsCenter := bounds.Center()
	v.OffsetX = screenCenter.X - boundsCenter.X*v.Scale
	v.OffsetY = screenCenter.Y - boundsCenter.Y*v.Scale
	return v
}
