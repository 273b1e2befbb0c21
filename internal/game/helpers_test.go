package game

import (
	"context"

	"go_5_memory_game/internal/model"
)

// stubRand returns a fixed Float64, cycles through ints for Intn and never shuffles.
type stubRand struct {
	float float64
	ints  []int
	calls int
}

func (s *stubRand) Float64() float64 { return s.float }

func (s *stubRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.calls%len(s.ints)] % n
	s.calls++
	return v
}

func (s *stubRand) Shuffle(int, func(i, j int)) {}

// memoryStore keeps every saved snapshot.
type memoryStore struct {
	stored *model.PoolSnapshot
	saves  []*model.PoolSnapshot
	err    error
}

func (m *memoryStore) Load(context.Context) (*model.PoolSnapshot, bool) {
	return m.stored, m.stored != nil
}

func (m *memoryStore) Save(_ context.Context, snapshot *model.PoolSnapshot) error {
	if m.err != nil {
		return m.err
	}
	m.saves = append(m.saves, snapshot)
	m.stored = snapshot
	return nil
}

func testPool(labels ...string) *model.WordPool {
	pool := model.NewWordPool()
	for _, l := range labels {
		pool.Append(model.Word{Label: l, ImageRef: "images/" + l + ".svg"})
	}
	return pool
}

func optionLabels(r *model.Round) []string {
	out := make([]string, 0, len(r.Options))
	for _, o := range r.Options {
		out = append(out, o.Label)
	}
	return out
}
