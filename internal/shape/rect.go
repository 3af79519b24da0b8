package shape

import (
	"fmt"
	"strings"
)

// Rect is an axis-aligned rectangle anchored at its left-top corner. Y grows
// toward the bottom edge, so the far corner is (left+width, top+height).
type Rect struct {
	Corner Point
	Width  uint
	Height uint
}

// NewRect validates the corner and the far edges against f.
func NewRect(f Field, left, top int, width, height uint) (Rect, error) {
	if err := f.checkExtent("width", width); err != nil {
		return Rect{}, err
	}
	if err := f.checkExtent("height", height); err != nil {
		return Rect{}, err
	}
	if err := f.check("left + width", left+int(width)); err != nil {
		return Rect{}, err
	}
	if err := f.check("top + height", top+int(height)); err != nil {
		return Rect{}, err
	}

	corner, err := NewPoint(f, left, top)
	if err != nil {
		return Rect{}, err
	}
	return Rect{Corner: corner, Width: width, Height: height}, nil
}

// Kind returns KindRect.
func (r Rect) Kind() string { return KindRect }

// Name returns "Rectangle".
func (r Rect) Name() string { return "Rectangle" }

// Area returns width × height.
func (r Rect) Area() int {
	return int(r.Width) * int(r.Height)
}

// Corners returns the four corners: anchor, right, bottom, opposite.
func (r Rect) Corners() [4]Point {
	w, h := int(r.Width), int(r.Height)
	return [4]Point{
		r.Corner,
		r.Corner.Offset(w, 0),
		r.Corner.Offset(0, h),
		r.Corner.Offset(w, h),
	}
}

// Info renders the four corners and the area.
func (r Rect) Info() string {
	var b strings.Builder
	b.WriteString("Corners:\n")
	for _, p := range r.Corners() {
		b.WriteString("\t")
		b.WriteString(p.Info())
	}
	fmt.Fprintf(&b, "Area: %d\n", r.Area())
	return b.String()
}

// Describe returns the header followed by Info.
func (r Rect) Describe() string {
	return header(r.Name()) + r.Info()
}

// Bounds spans from the anchor corner to the opposite one.
func (r Rect) Bounds() Box {
	return Box{
		MinX: r.Corner.X,
		MinY: r.Corner.Y,
		MaxX: r.Corner.X + int(r.Width),
		MaxY: r.Corner.Y + int(r.Height),
	}
}

// Square is a Rect whose width equals its height.
type Square struct {
	Rect
}

// NewSquare builds the underlying Rect with equal sides.
func NewSquare(f Field, left, top int, side uint) (Square, error) {
	r, err := NewRect(f, left, top, side, side)
	if err != nil {
		return Square{}, err
	}
	return Square{Rect: r}, nil
}

// Kind returns KindSquare.
func (s Square) Kind() string { return KindSquare }

// Name returns "Square".
func (s Square) Name() string { return "Square" }

// Side returns the side length.
func (s Square) Side() uint { return s.Width }

// Describe uses the Square header over the Rect Info.
func (s Square) Describe() string {
	return header(s.Name()) + s.Info()
}
