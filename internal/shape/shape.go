// Package shape implements the 2D shapes produced by shapegen.
//
// Every shape lives inside a Field, a square coordinate space symmetric around
// the origin. Constructors reject geometry that would leave the field with an
// error wrapping ErrOutOfField. NewPolygon also rejects vertex sequences too
// short to close with ErrTooFewVertices.
package shape

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the half-width of the default field.
const DefaultCapacity = 500

// MinPolygonVertices is the smallest vertex count that closes a polygon.
const MinPolygonVertices = 3

var (
	// ErrOutOfField means some coordinate or extent lies beyond the field bound.
	ErrOutOfField = errors.New("out of field")

	// ErrTooFewVertices means a polygon was given fewer than MinPolygonVertices.
	ErrTooFewVertices = errors.New("too few vertices")
)

// Kind names, used as factory registry keys.
const (
	KindPoint    = "Point"
	KindCircle   = "Circle"
	KindRect     = "Rect"
	KindSquare   = "Square"
	KindPolyline = "Polyline"
	KindPolygon  = "Polygon"
)

// Kinds lists every kind this package implements.
func Kinds() []string {
	return []string{KindPoint, KindCircle, KindRect, KindSquare, KindPolyline, KindPolygon}
}

// Named is the display-name capability.
type Named interface {
	Name() string
}

// Shape is implemented by every concrete shape.
type Shape interface {
	Named
	// Kind returns the registry key of the shape type.
	Kind() string
	// Info renders the geometric data, one fact per line.
	Info() string
	// Describe returns a header line with the display name followed by Info.
	Describe() string
	// Bounds returns the axis-aligned extent of the shape.
	Bounds() Box
}

// Field is the bounded coordinate space. A coordinate v is inside the field
// when -Capacity <= v <= Capacity.
type Field struct {
	Capacity int `yaml:"capacity" json:"capacity"`
}

// DefaultField returns the field with DefaultCapacity.
func DefaultField() Field {
	return Field{Capacity: DefaultCapacity}
}

// Contains reports whether v lies within the field bound.
func (f Field) Contains(v int) bool {
	return v >= -f.Capacity && v <= f.Capacity
}

func (f Field) check(what string, v int) error {
	if !f.Contains(v) {
		return fmt.Errorf("%w: %s %d exceeds ±%d", ErrOutOfField, what, v, f.Capacity)
	}
	return nil
}

// checkExtent rejects a width or radius longer than the field is wide. It runs
// before the extent is converted to int so huge values cannot wrap negative.
func (f Field) checkExtent(what string, v uint) error {
	if f.Capacity < 0 || uint64(v) > 2*uint64(f.Capacity) {
		return fmt.Errorf("%w: %s %d exceeds field width %d", ErrOutOfField, what, v, 2*f.Capacity)
	}
	return nil
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX int `yaml:"min_x" json:"min_x"`
	MinY int `yaml:"min_y" json:"min_y"`
	MaxX int `yaml:"max_x" json:"max_x"`
	MaxY int `yaml:"max_y" json:"max_y"`
}

// Within reports whether the whole box lies inside f.
func (b Box) Within(f Field) bool {
	return f.Contains(b.MinX) && f.Contains(b.MinY) && f.Contains(b.MaxX) && f.Contains(b.MaxY)
}

func header(name string) string {
	return "-=- " + name + " -=-\n"
}
