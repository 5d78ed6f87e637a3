package prediction

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeFor(t *testing.T) {
	assert.Equal(t, RangeLow, RangeFor(30))
	assert.Equal(t, RangeLow, RangeFor(49))
	assert.Equal(t, RangeMid, RangeFor(50))
	assert.Equal(t, RangeMid, RangeFor(69))
	assert.Equal(t, RangeHigh, RangeFor(70))
	assert.Equal(t, RangeHigh, RangeFor(85))
}

func TestGenerator_NoRepeatsUntilExhausted(t *testing.T) {
	g := NewGeneratorWithSource(rand.NewSource(1))
	seen := make(map[float64]bool)

	for i := 0; i < 80; i++ {
		p := g.Next(30)
		assert.Equal(t, RangeLow, p.Range)
		assert.GreaterOrEqual(t, p.Coefficient, 1.2)
		assert.Less(t, p.Coefficient, 2.0)
		assert.False(t, seen[p.Coefficient], "coefficient %.2f issued twice", p.Coefficient)
		seen[p.Coefficient] = true
	}
	assert.Equal(t, 0, g.Remaining(RangeLow))

	p := g.Next(30)
	assert.Equal(t, RangeLow, p.Range)
	assert.Equal(t, 79, g.Remaining(RangeLow))
}

func TestGenerator_InstancesAreIndependent(t *testing.T) {
	a := NewGeneratorWithSource(rand.NewSource(7))
	b := NewGeneratorWithSource(rand.NewSource(7))

	a.Next(80)
	assert.Equal(t, 599, a.Remaining(RangeHigh))
	assert.Equal(t, 0, b.Remaining(RangeHigh))
	assert.Nil(t, b.pools[RangeHigh])
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGeneratorWithSource(rand.NewSource(42))
	b := NewGeneratorWithSource(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(60), b.Next(60))
	}
}
