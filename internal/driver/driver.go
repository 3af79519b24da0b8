// Package driver runs shapegen: it registers the configured shape kinds,
// fills a container with random shapes, captures them in a report and clears
// the container again.
package driver

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shapegen/internal/config"
	"shapegen/internal/container"
	"shapegen/internal/factory"
	"shapegen/internal/logging"
	"shapegen/internal/report"
	"shapegen/internal/shape"
)

// Driver owns one factory and the census shared with its containers.
type Driver struct {
	factory *factory.Factory
	census  *shape.Census
	logger  *zap.Logger
	rand    *rand.Rand
	seed    uint64
	count   factory.Range
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The factory gets a child logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// New validates cfg and builds a driver from it.
func New(cfg *config.Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	d := &Driver{
		census: shape.NewCensus(),
		logger: zap.NewNop(),
		seed:   cfg.Generation.Seed,
		count:  factory.Range{Min: cfg.Generation.MinShapes, Max: cfg.Generation.MaxShapes},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.seed == 0 {
		d.seed = uint64(time.Now().UnixNano())
	}
	d.rand = rand.New(rand.NewPCG(d.seed, 0))

	d.factory = factory.New(
		factory.WithSeed(d.seed),
		factory.WithCensus(d.census),
		factory.WithMaxAttempts(cfg.Generation.MaxAttempts),
		factory.WithLogger(logging.For(d.logger, logging.CategoryFactory)),
	)

	rules := factory.Rules{
		Field:           cfg.ShapeField(),
		PolylinePoints:  factory.Range(cfg.Generation.PolylinePoints),
		PolygonVertices: factory.Range(cfg.Generation.PolygonVertices),
	}
	if err := factory.RegisterDefaults(d.factory, rules, cfg.Kinds...); err != nil {
		return nil, err
	}

	d.logger = logging.For(d.logger, logging.CategoryDriver)
	d.logger.Debug("driver ready",
		zap.Uint64("seed", d.seed),
		zap.Strings("kinds", d.factory.Names()),
		zap.Int("field_capacity", rules.Field.Capacity))
	return d, nil
}

// Kinds returns the registered shape kinds.
func (d *Driver) Kinds() []string {
	return d.factory.Names()
}

// Census returns the live-shape census.
func (d *Driver) Census() *shape.Census {
	return d.census
}

// Seed returns the seed in effect, including a clock-derived one.
func (d *Driver) Seed() uint64 {
	return d.seed
}

// Run generates a random number of random shapes.
func (d *Driver) Run() (report.Report, error) {
	n := d.count.Draw(d.rand)
	return d.collect(n, d.factory.CreateRandom)
}

// Make generates n shapes of a single kind. An unregistered kind yields an
// error wrapping factory.ErrUnknownKind.
func (d *Driver) Make(kind string, n int) (report.Report, error) {
	return d.collect(n, func() (shape.Shape, error) {
		return d.factory.Create(kind)
	})
}

func (d *Driver) collect(n int, next func() (shape.Shape, error)) (report.Report, error) {
	runID := uuid.NewString()
	log := d.logger.With(zap.String("run_id", runID))

	shapes := container.New(container.WithRelease[shape.Shape](d.census.Release))
	defer shapes.Clear()

	retriesBefore := d.factory.Retries()
	for i := 0; i < n; i++ {
		s, err := next()
		if err != nil {
			return report.Report{}, err
		}
		shapes.PushBack(s)
	}

	r := report.Report{
		RunID:     runID,
		Seed:      d.seed,
		Generated: d.census.Live(),
		Retries:   d.factory.Retries() - retriesBefore,
		Shapes:    make([]report.Entry, 0, shapes.Len()),
	}
	for s := range shapes.All() {
		r.Shapes = append(r.Shapes, report.EntryFor(s))
	}
	log.Info("shapes generated",
		zap.Int("count", r.Generated),
		zap.Int("retries", r.Retries),
		zap.Any("by_kind", d.census.LiveByKind()))

	shapes.Clear()
	r.Remaining = d.census.Live()
	log.Debug("container cleared", zap.Int("remaining", r.Remaining))

	return r, nil
}
