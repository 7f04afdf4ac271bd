// Package render draws a snapshot of the spinning book onto a character canvas.
package render

import (
	"fmt"
	"math"

	"github.com/akmonengine/flywheel"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// Canvas is the subset of tcell.Screen the renderer draws on
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Book is the extent of the rendered box, in pixels
type Book struct {
	Width  float64
	Height float64
	Depth  float64
}

// Point is a projected vertex in cell coordinates, with its depth toward the viewer
type Point struct {
	X, Y float64
	Z    float64
}

type face struct {
	normal   mgl64.Vec3
	vertices [4]int
	rune     rune
	style    tcell.Style
}

// Renderer projects the book through an orientation.
// Screen axes follow CSS: x right, y down, z toward the viewer.
type Renderer struct {
	Book        Book
	Perspective float64 // viewer distance in pixels
	CellWidth   float64
	CellHeight  float64
	Title       string
}

// New creates a renderer for a book of the given extents
func New(book Book, perspective, cellWidth, cellHeight float64) *Renderer {
	return &Renderer{
		Book:        book,
		Perspective: perspective,
		CellWidth:   cellWidth,
		CellHeight:  cellHeight,
		Title:       "Bestiary",
	}
}

var (
	styleCover  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleSpine  = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	stylePages  = tcell.StyleDefault.Foreground(tcell.ColorBeige)
	styleHidden = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
)

// vertices of the box, centered on the origin
//
//	0-3 back (z-), 4-7 front (z+), counter-clockwise from top-left
func (r *Renderer) vertices() [8]mgl64.Vec3 {
	w, h, d := r.Book.Width/2, r.Book.Height/2, r.Book.Depth/2
	return [8]mgl64.Vec3{
		{-w, -h, -d}, {w, -h, -d}, {w, h, -d}, {-w, h, -d},
		{-w, -h, d}, {w, -h, d}, {w, h, d}, {-w, h, d},
	}
}

var faces = [6]face{
	{normal: mgl64.Vec3{0, 0, 1}, vertices: [4]int{4, 5, 6, 7}, rune: '#', style: styleCover},  // cover
	{normal: mgl64.Vec3{0, 0, -1}, vertices: [4]int{0, 1, 2, 3}, rune: '#', style: styleCover}, // back cover
	{normal: mgl64.Vec3{-1, 0, 0}, vertices: [4]int{0, 3, 7, 4}, rune: '|', style: styleSpine}, // spine
	{normal: mgl64.Vec3{1, 0, 0}, vertices: [4]int{1, 2, 6, 5}, rune: '=', style: stylePages},  // pages right
	{normal: mgl64.Vec3{0, -1, 0}, vertices: [4]int{0, 1, 5, 4}, rune: '-', style: stylePages}, // pages top
	{normal: mgl64.Vec3{0, 1, 0}, vertices: [4]int{3, 2, 6, 7}, rune: '-', style: stylePages},  // pages bottom
}

// fit returns the scale that keeps the whole book on a canvas of w x h cells
func (r *Renderer) fit(w, h int) float64 {
	radius := mgl64.Vec3{r.Book.Width, r.Book.Height, r.Book.Depth}.Len() / 2
	if radius == 0 {
		return 1
	}

	available := math.Min(float64(w)*r.CellWidth, float64(h)*r.CellHeight) / 2
	// leave room for the perspective enlargement of the nearest corner
	if r.Perspective > radius {
		available *= (r.Perspective - radius) / r.Perspective
	}

	return math.Min(1, available/radius)
}

// Project transforms the book vertices by m and maps them onto a canvas of w x h cells
func (r *Renderer) Project(m mgl64.Mat4, w, h int) [8]Point {
	scale := r.fit(w, h)
	cx, cy := float64(w)/2, float64(h)/2

	var points [8]Point
	for i, v := range r.vertices() {
		p := m.Mul4x1(v.Vec4(1)).Vec3().Mul(scale)

		perspective := 1.0
		if r.Perspective > 0 && p.Z() < r.Perspective {
			perspective = r.Perspective / (r.Perspective - p.Z())
		}

		points[i] = Point{
			X: cx + p.X()*perspective/r.CellWidth,
			Y: cy + p.Y()*perspective/r.CellHeight,
			Z: p.Z(),
		}
	}

	return points
}

// Affordance is the cursor hint for the current hold state
func Affordance(held bool) string {
	if held {
		return "grabbing"
	}
	return "grab"
}

// Draw renders the snapshot. The last row is kept for the status line.
func (r *Renderer) Draw(c Canvas, s flywheel.State) {
	w, h := c.Size()
	if w <= 0 || h <= 1 {
		return
	}

	m := mgl64.Ident4()
	if s.Orientation != nil {
		m = s.Orientation.Mat4()
	}
	rows := h - 1
	points := r.Project(m, w, rows)

	// hidden faces first, so visible edges overwrite shared ones
	var visible []face
	for _, f := range faces {
		if m.Mul4x1(f.normal.Vec4(0)).Z() > 0 {
			visible = append(visible, f)
			continue
		}
		r.drawFace(c, points, f, '.', styleHidden, w, rows)
	}
	for _, f := range visible {
		r.drawFace(c, points, f, f.rune, f.style, w, rows)
		if f.normal.Z() > 0 && r.Title != "" {
			r.drawTitle(c, points, f, w, rows)
		}
	}

	drawStatus(c, s, w, h-1)
}

func (r *Renderer) drawFace(c Canvas, points [8]Point, f face, ch rune, style tcell.Style, w, h int) {
	for i := range f.vertices {
		a := points[f.vertices[i]]
		b := points[f.vertices[(i+1)%len(f.vertices)]]
		drawLine(c, a, b, ch, style, w, h)
	}
}

func (r *Renderer) drawTitle(c Canvas, points [8]Point, f face, w, h int) {
	var x, y float64
	for _, i := range f.vertices {
		x += points[i].X
		y += points[i].Y
	}
	x, y = x/4, y/4

	start := int(math.Round(x)) - len(r.Title)/2
	row := int(math.Round(y))
	drawText(c, start, row, styleTitle, r.Title, w, h)
}

func drawStatus(c Canvas, s flywheel.State, w, row int) {
	transform := "none"
	if s.Orientation != nil {
		transform = s.Orientation.String()
	}

	status := fmt.Sprintf("[%s] %.2f deg/s | friction %.0f | %s", Affordance(s.Held), s.Momentum.Angle, s.Friction, transform)
	drawText(c, 0, row, styleStatus, status, w, row+1)
}

func drawText(c Canvas, x, y int, style tcell.Style, str string, w, h int) {
	if y < 0 || y >= h {
		return
	}
	for _, r := range str {
		if x >= w {
			return
		}
		if x >= 0 {
			c.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// drawLine rasterizes a segment with Bresenham, clipped to the canvas
func drawLine(c Canvas, a, b Point, ch rune, style tcell.Style, w, h int) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			c.SetContent(x0, y0, ch, nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
