package factory

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapegen/internal/shape"
)

func TestRange_Draw(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	rg := Range{Min: 2, Max: 5}
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := rg.Draw(r)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 4)

	assert.Equal(t, 3, Range{Min: 3, Max: 3}.Draw(r))
	assert.Equal(t, 3, Range{Min: 3, Max: 1}.Draw(r))
}

func TestGenerators_ProduceInFieldShapes(t *testing.T) {
	rules := DefaultRules()
	f := New(WithSeed(11))
	require.NoError(t, RegisterDefaults(f, rules))

	for _, kind := range shape.Kinds() {
		t.Run(kind, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				s, err := f.Create(kind)
				require.NoError(t, err)
				assert.Equal(t, kind, s.Kind())
				assert.True(t, s.Bounds().Within(rules.Field), "bounds %+v escape field", s.Bounds())
			}
		})
	}
}

func TestGenerators_PointCounts(t *testing.T) {
	rules := DefaultRules()
	f := New(WithSeed(5))
	require.NoError(t, RegisterDefaults(f, rules, shape.KindPolyline, shape.KindPolygon))

	for i := 0; i < 100; i++ {
		s, err := f.Create(shape.KindPolyline)
		require.NoError(t, err)
		n := len(s.(*shape.Polyline).Points())
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 11)

		s, err = f.Create(shape.KindPolygon)
		require.NoError(t, err)
		n = len(s.(*shape.Polygon).Vertices())
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 12)
	}
}

func TestGenerators_SmallField(t *testing.T) {
	rules := DefaultRules()
	rules.Field = shape.Field{Capacity: 1}
	f := New(WithSeed(8))
	require.NoError(t, RegisterDefaults(f, rules))

	for _, kind := range shape.Kinds() {
		s, err := f.Create(kind)
		require.NoError(t, err, kind)
		assert.True(t, s.Bounds().Within(rules.Field))
	}
}

func TestRegisterDefaults_Subset(t *testing.T) {
	f := New(WithSeed(1))
	require.NoError(t, RegisterDefaults(f, DefaultRules(), shape.KindCircle, shape.KindSquare))
	assert.Equal(t, []string{shape.KindCircle, shape.KindSquare}, f.Names())
}

func TestRegisterDefaults_UnknownKind(t *testing.T) {
	f := New(WithSeed(1))
	err := RegisterDefaults(f, DefaultRules(), shape.KindPoint, "Hexagon")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
