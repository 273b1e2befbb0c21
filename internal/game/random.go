package game

import (
	"math/rand"
	"sync"
)

// Randomizer is the source of every random decision the generator makes.
// *rand.Rand satisfies it; tests inject deterministic stubs.
type Randomizer interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// lockedRand makes a *rand.Rand safe to share between learners.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomizer returns a goroutine-safe Randomizer seeded with seed.
func NewRandomizer(seed int64) Randomizer {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rnd.Shuffle(n, swap)
}
