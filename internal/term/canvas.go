// internal/term/canvas.go
package term

import (
	"math"

	"space-war/internal/component"
	"space-war/internal/config"
	"space-war/internal/types"
	"space-war/pkg/vec2"

	"github.com/gdamore/tcell/v2"
)

// Cell: координата ячейки терминала
type Cell struct {
	X, Y int
}

// Projection переводит координаты арены в ячейки экрана заданного размера.
type Projection struct {
	Arena      vec2.Vec
	Cols, Rows int
}

func (p Projection) Cell(v vec2.Vec) Cell {
	x := int(math.Floor(v.X / p.Arena.X * float64(p.Cols)))
	y := int(math.Floor(v.Y / p.Arena.Y * float64(p.Rows)))
	return Cell{X: x, Y: y}
}

// Rect returns the cells covered by r, always at least one.
func (p Projection) Rect(r vec2.Rect) (Cell, Cell) {
	lo := p.Cell(r.Min)
	hi := p.Cell(r.Max())
	hi.X = max(lo.X, hi.X-1)
	hi.Y = max(lo.Y, hi.Y-1)
	return lo, hi
}

// orientationOffset: поворотный сдвиг спрайта истребителя
const orientationOffset = config.CraftRotOffset

var headingGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// HeadingGlyph выбирает стрелку по направлению в градусах (0: вправо,
// положительные: против часовой стрелки).
func HeadingGlyph(degrees float64) rune {
	i := int(math.Round(vec2.NormalizeDegrees(degrees)/45)) % len(headingGlyphs)
	return headingGlyphs[i]
}

var sideStyles = [types.SideCount]tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

var (
	planetStyle    = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	explosionStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	textStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Canvas рисует спрайты арены символами
type Canvas struct {
	screen tcell.Screen
	proj   Projection
}

func NewCanvas(screen tcell.Screen, arena vec2.Vec) *Canvas {
	c := &Canvas{screen: screen}
	c.Resize(arena)
	return c
}

// Resize пересчитывает проекцию под текущий размер экрана
func (c *Canvas) Resize(arena vec2.Vec) {
	cols, rows := c.screen.Size()
	c.proj = Projection{Arena: arena, Cols: cols, Rows: max(1, rows-1)} // последняя строка: HUD
}

func (c *Canvas) Draw(drawables []component.Drawable) {
	for _, d := range drawables {
		s := d.Sprite()
		if !s.Visible || s.Scale <= 0 {
			continue
		}
		switch s.Key {
		case component.SpritePlanet:
			c.fill(s.Bounds, 'O', planetStyle)
		case component.SpriteExplosion:
			c.fill(s.Bounds, '*', explosionStyle)
		case component.BulletSprite(s.Side):
			c.set(c.proj.Cell(s.Bounds.Center()), '•', sideStyles[s.Side])
		case component.FighterSprite(s.Side):
			c.set(c.proj.Cell(s.Bounds.Center()), HeadingGlyph(s.Orientation-orientationOffset), sideStyles[s.Side])
		}
	}
}

// Text пишет строку в нижнюю строку экрана начиная с колонки x
func (c *Canvas) Text(x int, s string, style tcell.Style) {
	_, rows := c.screen.Size()
	for i, r := range []rune(s) {
		c.screen.SetContent(x+i, rows-1, r, nil, style)
	}
}

func (c *Canvas) fill(r vec2.Rect, ch rune, style tcell.Style) {
	lo, hi := c.proj.Rect(r)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			c.set(Cell{x, y}, ch, style)
		}
	}
}

func (c *Canvas) set(cell Cell, ch rune, style tcell.Style) {
	if cell.X < 0 || cell.Y < 0 || cell.X >= c.proj.Cols || cell.Y >= c.proj.Rows {
		return
	}
	c.screen.SetContent(cell.X, cell.Y, ch, nil, style)
}
