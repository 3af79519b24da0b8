package shape

import "fmt"

// Circle is a center point and a radius.
type Circle struct {
	Center Point
	Radius uint
}

// NewCircle fails when the circle would cross the field edge in any of the
// four axis directions.
func NewCircle(f Field, cx, cy int, radius uint) (Circle, error) {
	if err := f.checkExtent("radius", radius); err != nil {
		return Circle{}, err
	}
	r := int(radius)
	for _, edge := range []struct {
		what string
		v    int
	}{
		{"center x + radius", cx + r},
		{"center y + radius", cy + r},
		{"center x - radius", cx - r},
		{"center y - radius", cy - r},
	} {
		if err := f.check(edge.what, edge.v); err != nil {
			return Circle{}, err
		}
	}

	center, err := NewPoint(f, cx, cy)
	if err != nil {
		return Circle{}, err
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Kind returns KindCircle.
func (c Circle) Kind() string { return KindCircle }

// Name returns "Circle".
func (c Circle) Name() string { return "Circle" }

// Info renders the center and the radius.
func (c Circle) Info() string {
	return "Center:\t" + c.Center.Info() + fmt.Sprintf("Radius: %d\n", c.Radius)
}

// Describe returns the header followed by Info.
func (c Circle) Describe() string {
	return header(c.Name()) + c.Info()
}

// Bounds spans radius in each direction from the center.
func (c Circle) Bounds() Box {
	r := int(c.Radius)
	return Box{
		MinX: c.Center.X - r,
		MinY: c.Center.Y - r,
		MaxX: c.Center.X + r,
		MaxY: c.Center.Y + r,
	}
}
