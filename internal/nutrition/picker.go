package nutrition

import (
	"math/rand"
	"sync"
	"time"
)

// Picker chooses one of n stored plates for a goal.
type Picker interface {
	Pick(n int) int
}

// UniformPicker picks uniformly at random. It is safe for concurrent use.
type UniformPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniformPicker returns a picker drawing from src. A nil src is seeded
// from the clock.
func NewUniformPicker(src rand.Source) *UniformPicker {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &UniformPicker{rng: rand.New(src)}
}

func (p *UniformPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

// NewestPicker always returns the first, most recently created plate.
type NewestPicker struct{}

func (NewestPicker) Pick(int) int { return 0 }
