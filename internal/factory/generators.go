package factory

import (
	"fmt"
	"math/rand/v2"

	"shapegen/internal/shape"
)

// Range is an inclusive integer range.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Draw returns a uniform value in [Min, Max].
func (rg Range) Draw(r *rand.Rand) int {
	if rg.Max <= rg.Min {
		return rg.Min
	}
	return rg.Min + r.IntN(rg.Max-rg.Min+1)
}

// Rules holds the random-construction parameters shared by the default
// generators.
type Rules struct {
	Field           shape.Field
	PolylinePoints  Range
	PolygonVertices Range
}

// DefaultRules draws 2..11 polyline points and 3..12 polygon vertices in the
// default field.
func DefaultRules() Rules {
	return Rules{
		Field:           shape.DefaultField(),
		PolylinePoints:  Range{Min: 2, Max: 11},
		PolygonVertices: Range{Min: 3, Max: 12},
	}
}

// coord draws a signed coordinate strictly inside the field.
func (rl Rules) coord(r *rand.Rand) int {
	c := rl.Field.Capacity
	if c < 1 {
		return 0
	}
	return r.IntN(2*c-1) - (c - 1)
}

// extent draws a radius, width, height or side in [0, capacity).
func (rl Rules) extent(r *rand.Rand) uint {
	if rl.Field.Capacity < 1 {
		return 0
	}
	return uint(r.IntN(rl.Field.Capacity))
}

// Generators returns one generator per shape kind. Coordinates and extents
// are drawn independently, so Circle, Rect and Square draws may fall outside
// the field and rely on Create to retry.
func (rl Rules) Generators() map[string]Generator {
	return map[string]Generator{
		shape.KindPoint: GeneratorFunc(func(r *rand.Rand) (shape.Shape, error) {
			return settle[shape.Point](shape.NewPoint(rl.Field, rl.coord(r), rl.coord(r)))
		}),
		shape.KindCircle: GeneratorFunc(func(r *rand.Rand) (shape.Shape, error) {
			return settle[shape.Circle](shape.NewCircle(rl.Field, rl.coord(r), rl.coord(r), rl.extent(r)))
		}),
		shape.KindRect: GeneratorFunc(func(r *rand.Rand) (shape.Shape, error) {
			return settle[shape.Rect](shape.NewRect(rl.Field, rl.coord(r), rl.coord(r), rl.extent(r), rl.extent(r)))
		}),
		shape.KindSquare: GeneratorFunc(func(r *rand.Rand) (shape.Shape, error) {
			return settle[shape.Square](shape.NewSquare(rl.Field, rl.coord(r), rl.coord(r), rl.extent(r)))
		}),
		shape.KindPolyline: GeneratorFunc(func(r *rand.Rand) (shape.Shape, error) {
			line := shape.NewPolyline(rl.Field)
			for n := rl.PolylinePoints.Draw(r); n > 0; n-- {
				if err := line.AddPoint(rl.coord(r), rl.coord(r)); err != nil {
					return nil, err
				}
			}
			return line, nil
		}),
		shape.KindPolygon: GeneratorFunc(func(r *rand.Rand) (shape.Shape, error) {
			vertices := make([]shape.Point, rl.PolygonVertices.Draw(r))
			for i := range vertices {
				vertices[i] = shape.Point{X: rl.coord(r), Y: rl.coord(r)}
			}
			return settle[*shape.Polygon](shape.NewPolygon(rl.Field, vertices...))
		}),
	}
}

// RegisterDefaults registers the named kinds with f using rules. With no
// kinds it registers every kind the shape package implements.
func RegisterDefaults(f *Factory, rules Rules, kinds ...string) error {
	if len(kinds) == 0 {
		kinds = shape.Kinds()
	}
	gens := rules.Generators()
	for _, kind := range kinds {
		g, ok := gens[kind]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}
		f.Register(kind, g)
	}
	return nil
}

// settle drops the zero-value shape a failed constructor returns, so a failed
// generation never yields a non-nil Shape.
func settle[S shape.Shape](s S, err error) (shape.Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
