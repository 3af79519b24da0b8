// Package factory maps shape kind names to generators that produce
// randomized, validated shapes.
package factory

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"go.uber.org/zap"

	"shapegen/internal/shape"
)

// DefaultMaxAttempts bounds how many times Create regenerates a shape whose
// random parameters fell outside the field.
const DefaultMaxAttempts = 1000

var (
	// ErrUnknownKind is returned by Create for a name nobody registered.
	// It is a not-found outcome, not a failure of the factory.
	ErrUnknownKind = errors.New("unknown shape kind")

	// ErrNoGenerators is returned by CreateRandom on an empty registry.
	ErrNoGenerators = errors.New("no shape generators registered")

	// ErrAttemptsExhausted is returned when every attempt produced
	// out-of-field geometry.
	ErrAttemptsExhausted = errors.New("shape generation attempts exhausted")
)

// Generator produces one new shape from random parameters. It returns an
// error wrapping shape.ErrOutOfField when the drawn parameters are invalid.
type Generator interface {
	Generate(r *rand.Rand) (shape.Shape, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(r *rand.Rand) (shape.Shape, error)

// Generate calls fn(r).
func (fn GeneratorFunc) Generate(r *rand.Rand) (shape.Shape, error) {
	return fn(r)
}

// Factory is a name-keyed registry of generators. It is not safe for
// concurrent use.
type Factory struct {
	generators  map[string]Generator
	rand        *rand.Rand
	census      *shape.Census
	logger      *zap.Logger
	maxAttempts int
	retries     int
}

// Option configures a Factory.
type Option func(*Factory)

// WithRand sets the random source shared by all generators.
func WithRand(r *rand.Rand) Option {
	return func(f *Factory) { f.rand = r }
}

// WithSeed seeds a PCG source. Equal seeds give equal shape sequences.
func WithSeed(seed uint64) Option {
	return func(f *Factory) { f.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithCensus records every created shape in c.
func WithCensus(c *shape.Census) Option {
	return func(f *Factory) { f.census = c }
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(f *Factory) { f.logger = l }
}

// WithMaxAttempts bounds regeneration per Create call. Values below 1 are
// ignored.
func WithMaxAttempts(n int) Option {
	return func(f *Factory) {
		if n >= 1 {
			f.maxAttempts = n
		}
	}
}

// New creates an empty factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		generators:  make(map[string]Generator),
		logger:      zap.NewNop(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rand == nil {
		seed := uint64(time.Now().UnixNano())
		f.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if f.census == nil {
		f.census = shape.NewCensus()
	}
	return f
}

// Register adds g under name. Registering a name that already exists is a
// no-op and reports false.
func (f *Factory) Register(name string, g Generator) bool {
	if _, exists := f.generators[name]; exists {
		return false
	}
	f.generators[name] = g
	f.logger.Debug("registered shape generator", zap.String("kind", name))
	return true
}

// Names returns the registered names in sorted order.
func (f *Factory) Names() []string {
	names := make([]string, 0, len(f.generators))
	for name := range f.generators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Census returns the census that tracks shapes created by f.
func (f *Factory) Census() *shape.Census {
	return f.census
}

// Retries returns how many out-of-field generations f has discarded.
func (f *Factory) Retries() int {
	return f.retries
}

// Create generates a shape of the named kind. Out-of-field generations are
// discarded and regenerated from scratch, up to the attempt limit.
func (f *Factory) Create(name string) (shape.Shape, error) {
	g, ok := f.generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}

	var lastErr error
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		s, err := g.Generate(f.rand)
		if err == nil {
			f.census.Track(s)
			return s, nil
		}
		if !errors.Is(err, shape.ErrOutOfField) {
			return nil, fmt.Errorf("generate %s: %w", name, err)
		}

		lastErr = err
		f.retries++
		f.logger.Debug("retrying shape creation",
			zap.String("kind", name),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrAttemptsExhausted, name, f.maxAttempts, lastErr)
}

// CreateRandom picks a registered kind uniformly at random and creates it.
func (f *Factory) CreateRandom() (shape.Shape, error) {
	names := f.Names()
	if len(names) == 0 {
		return nil, ErrNoGenerators
	}
	return f.Create(names[f.rand.IntN(len(names))])
}
