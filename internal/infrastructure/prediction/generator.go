package prediction

import (
	"math/rand"
	"sync"
	"time"

	"github.com/saradorri/predictor/internal/domain"
)

const (
	RangeLow  = "low"
	RangeMid  = "mid"
	RangeHigh = "high"
)

// band is a coefficient interval in hundredths, upper bound exclusive
type band struct {
	name     string
	fromCent int
	toCent   int
}

var bands = map[string]band{
	RangeLow:  {name: RangeLow, fromCent: 120, toCent: 200},
	RangeMid:  {name: RangeMid, fromCent: 200, toCent: 400},
	RangeHigh: {name: RangeHigh, fromCent: 400, toCent: 1000},
}

// Generator issues display coefficients without repeating one inside a range
// until the range's pool is exhausted. Every instance owns its own pools.
type Generator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	pools map[string][]int
}

// NewGenerator creates a generator seeded from the current time
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource creates a generator with a deterministic source
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{
		rnd:   rand.New(src),
		pools: make(map[string][]int, len(bands)),
	}
}

var _ domain.PredictionGenerator = (*Generator)(nil)

// RangeFor picks the coefficient range for a chance value
func RangeFor(chance int) string {
	switch {
	case chance < 50:
		return RangeLow
	case chance < 70:
		return RangeMid
	default:
		return RangeHigh
	}
}

// Next returns the next coefficient for the player's chance
func (g *Generator) Next(chance int) domain.Prediction {
	name := RangeFor(chance)

	g.mu.Lock()
	defer g.mu.Unlock()

	pool := g.pools[name]
	if len(pool) == 0 {
		pool = g.fill(bands[name])
	}
	cent := pool[len(pool)-1]
	g.pools[name] = pool[:len(pool)-1]

	return domain.Prediction{
		Coefficient: float64(cent) / 100,
		Range:       name,
	}
}

// Remaining returns how many coefficients are left in a range's pool
func (g *Generator) Remaining(rangeName string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pools[rangeName])
}

func (g *Generator) fill(b band) []int {
	pool := make([]int, 0, b.toCent-b.fromCent)
	for c := b.fromCent; c < b.toCent; c++ {
		pool = append(pool, c)
	}
	g.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool
}
