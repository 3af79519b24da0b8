package shape

import (
	"fmt"
	"math"
	"strings"

	"shapegen/internal/container"
)

// Polyline is an open path through an ordered sequence of points.
type Polyline struct {
	field  Field
	points container.List[Point]
}

// NewPolyline returns an empty polyline bound to f.
func NewPolyline(f Field) *Polyline {
	return &Polyline{field: f}
}

// AddPoint appends (x, y) to the path.
func (p *Polyline) AddPoint(x, y int) error {
	pt, err := NewPoint(p.field, x, y)
	if err != nil {
		return err
	}
	p.points.PushBack(pt)
	return nil
}

// Points returns the path points in order.
func (p *Polyline) Points() []Point { return p.points.Values() }

// Kind returns KindPolyline.
func (p *Polyline) Kind() string { return KindPolyline }

// Name returns "Polyline".
func (p *Polyline) Name() string { return "Polyline" }

// Length is the sum of the distances between consecutive points.
func (p *Polyline) Length() float64 {
	return pathLength(p.points.Values(), false)
}

// Info lists the points in order followed by the length.
func (p *Polyline) Info() string {
	var b strings.Builder
	b.WriteString("Connected points:\n")
	writePoints(&b, &p.points)
	fmt.Fprintf(&b, "Length:\n\t%f\n", p.Length())
	return b.String()
}

// Describe returns the header followed by Info.
func (p *Polyline) Describe() string {
	return header(p.Name()) + p.Info()
}

// Bounds is the smallest box holding every point.
func (p *Polyline) Bounds() Box { return boundsOf(&p.points) }

// Polygon is a closed path: the last vertex connects back to the first.
type Polygon struct {
	field    Field
	vertices container.List[Point]
}

// NewPolygon validates every vertex against f and requires at least
// MinPolygonVertices of them.
func NewPolygon(f Field, vertices ...Point) (*Polygon, error) {
	if len(vertices) < MinPolygonVertices {
		return nil, fmt.Errorf("%w: polygon needs %d, got %d", ErrTooFewVertices, MinPolygonVertices, len(vertices))
	}
	p := &Polygon{field: f}
	for _, v := range vertices {
		if err := p.AddVertex(v.X, v.Y); err != nil {
			p.vertices.Clear()
			return nil, err
		}
	}
	return p, nil
}

// AddVertex appends (x, y) to the vertex sequence.
func (p *Polygon) AddVertex(x, y int) error {
	pt, err := NewPoint(p.field, x, y)
	if err != nil {
		return err
	}
	p.vertices.PushBack(pt)
	return nil
}

// Vertices returns the vertices in order.
func (p *Polygon) Vertices() []Point { return p.vertices.Values() }

// Kind returns KindPolygon.
func (p *Polygon) Kind() string { return KindPolygon }

// Name returns "Polygon".
func (p *Polygon) Name() string { return "Polygon" }

// Perimeter is the length of every edge including the closing one.
func (p *Polygon) Perimeter() float64 {
	return pathLength(p.vertices.Values(), true)
}

// Info lists the vertices in order followed by the perimeter.
func (p *Polygon) Info() string {
	var b strings.Builder
	b.WriteString("Vertices:\n")
	writePoints(&b, &p.vertices)
	fmt.Fprintf(&b, "Perimeter:\n\t%f\n", p.Perimeter())
	return b.String()
}

// Describe returns the header followed by Info.
func (p *Polygon) Describe() string {
	return header(p.Name()) + p.Info()
}

// Bounds is the smallest box holding every vertex.
func (p *Polygon) Bounds() Box { return boundsOf(&p.vertices) }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func pathLength(pts []Point, closed bool) float64 {
	if len(pts) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(pts); i++ {
		total += Distance(pts[i-1], pts[i])
	}
	if closed {
		total += Distance(pts[len(pts)-1], pts[0])
	}
	return total
}

func writePoints(b *strings.Builder, pts *container.List[Point]) {
	for pt := range pts.All() {
		b.WriteString("\t")
		b.WriteString(pt.Info())
	}
}

func boundsOf(pts *container.List[Point]) Box {
	var box Box
	first := true
	for pt := range pts.All() {
		if first {
			box = pt.Bounds()
			first = false
			continue
		}
		box.MinX = min(box.MinX, pt.X)
		box.MinY = min(box.MinY, pt.Y)
		box.MaxX = max(box.MaxX, pt.X)
		box.MaxY = max(box.MaxY, pt.Y)
	}
	return box
}
