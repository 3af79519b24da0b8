package shape

import "fmt"

// Point is a single location in the field.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// NewPoint validates (x, y) against f.
func NewPoint(f Field, x, y int) (Point, error) {
	if err := f.check("x", x); err != nil {
		return Point{}, err
	}
	if err := f.check("y", y); err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// Kind returns KindPoint.
func (p Point) Kind() string { return KindPoint }

// Name returns "Point".
func (p Point) Name() string { return "Point" }

// Info renders the coordinates on one line.
func (p Point) Info() string {
	return fmt.Sprintf("Coordinates: (%d, %d)\n", p.X, p.Y)
}

// Describe returns the header followed by Info.
func (p Point) Describe() string {
	return header(p.Name()) + p.Info()
}

// Bounds is the degenerate box at p.
func (p Point) Bounds() Box {
	return Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// Offset returns p moved by (dx, dy) without validation.
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
