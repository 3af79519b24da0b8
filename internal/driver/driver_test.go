package driver

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"shapegen/internal/config"
	"shapegen/internal/factory"
	"shapegen/internal/shape"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(seed uint64, min, max int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Generation.Seed = seed
	cfg.Generation.MinShapes = min
	cfg.Generation.MaxShapes = max
	return cfg
}

func TestDriver_RunCountsAndClears(t *testing.T) {
	d, err := New(testConfig(1, 5, 5))
	require.NoError(t, err)

	r, err := d.Run()
	require.NoError(t, err)

	assert.Equal(t, 5, r.Generated)
	assert.Len(t, r.Shapes, 5)
	assert.Zero(t, r.Remaining)
	assert.Zero(t, d.Census().Live())
	assert.Equal(t, uint64(1), r.Seed)

	_, err = uuid.Parse(r.RunID)
	assert.NoError(t, err)
}

func TestDriver_RunCountWithinRange(t *testing.T) {
	d, err := New(testConfig(2, 20, 29))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		r, err := d.Run()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.Generated, 20)
		assert.LessOrEqual(t, r.Generated, 29)
		for _, e := range r.Shapes {
			assert.True(t, e.Bounds.Within(shape.DefaultField()), "%s out of field: %+v", e.Kind, e.Bounds)
		}
	}
}

func TestDriver_SingleKind(t *testing.T) {
	cfg := testConfig(3, 8, 8)
	cfg.Kinds = []string{shape.KindSquare}
	d, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{shape.KindSquare}, d.Kinds())

	r, err := d.Run()
	require.NoError(t, err)
	for _, e := range r.Shapes {
		assert.Equal(t, shape.KindSquare, e.Kind)
		assert.Equal(t, e.Width, e.Height)
	}
}

func TestDriver_Make(t *testing.T) {
	d, err := New(testConfig(4, 1, 1))
	require.NoError(t, err)

	r, err := d.Make(shape.KindCircle, 3)
	require.NoError(t, err)
	require.Len(t, r.Shapes, 3)
	for _, e := range r.Shapes {
		assert.Equal(t, "Circle", e.Name)
	}
	assert.Zero(t, r.Remaining)
}

func TestDriver_MakeUnknownKind(t *testing.T) {
	d, err := New(testConfig(5, 1, 1))
	require.NoError(t, err)

	_, err = d.Make("Hexagon", 2)
	assert.ErrorIs(t, err, factory.ErrUnknownKind)
	assert.Zero(t, d.Census().Live(), "failed run must not leak live shapes")
}

func TestDriver_SeedDeterminism(t *testing.T) {
	descriptions := func() []string {
		d, err := New(testConfig(99, 10, 15))
		require.NoError(t, err)
		r, err := d.Run()
		require.NoError(t, err)
		var out []string
		for _, e := range r.Shapes {
			out = append(out, e.Description)
		}
		return out
	}
	assert.Equal(t, descriptions(), descriptions())
}

func TestDriver_ClockSeed(t *testing.T) {
	d, err := New(testConfig(0, 1, 1))
	require.NoError(t, err)
	assert.NotZero(t, d.Seed())
}

func TestDriver_InvalidConfig(t *testing.T) {
	cfg := testConfig(1, 5, 4)
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestDriver_LogsRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	d, err := New(testConfig(6, 2, 2), WithLogger(zap.New(core)))
	require.NoError(t, err)

	r, err := d.Run()
	require.NoError(t, err)

	entries := logs.FilterMessage("shapes generated").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "driver", entries[0].LoggerName)
	assert.Equal(t, r.RunID, entries[0].ContextMap()["run_id"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["count"])
}
