package game

import (
	"time"
)

const (
	// RoundsPerSession is the fixed length of a session.
	RoundsPerSession = 10
	// OptionsPerRound is the number of options in a round when the pool is large enough.
	OptionsPerRound = 4
)

// Generator builds rounds and sessions from a word pool.
type Generator struct {
	rng Randomizer
	now func() time.Time
}

type Option func(*Generator)

// WithRandomizer replaces the default time-seeded source.
func WithRandomizer(r Randomizer) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithClock replaces time.Now for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRandomizer(time.Now().UnixNano())
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}
