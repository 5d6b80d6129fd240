package scatter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed replays a fixed sequence of draws.
type fixed struct {
	floats []float64
	ints   []int
}

func (f *fixed) Float64() float64 {
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fixed) Intn(n int) int {
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func TestInSphere_Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := New(rng)

	for i := 0; i < 2000; i++ {
		p := s.InSphere(500)
		require.LessOrEqual(t, p.Length(), 500.0+1e-9)
	}
}

func TestInSphere_ZeroRadius(t *testing.T) {
	s := New(&fixed{})
	assert.Zero(t, s.InSphere(0).Length())
}

func TestInSphere_Uniform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := New(rng)

	// a uniform ball puts 1/8 of its volume inside half the radius
	inner := 0
	const n = 8000
	for i := 0; i < n; i++ {
		if s.InSphere(1).Length() < 0.5 {
			inner++
		}
	}
	assert.InDelta(t, 0.125, float64(inner)/n, 0.02)
}

func TestDirection_Planar(t *testing.T) {
	s := New(&fixed{floats: []float64{0.25}})
	d := s.Direction()
	assert.InDelta(t, 0.0, d.X, 1e-9)
	assert.InDelta(t, 1.0, d.Y, 1e-9)
	assert.Zero(t, d.Z)
}

func TestRange(t *testing.T) {
	s := New(&fixed{floats: []float64{0, 0.5}})
	assert.Equal(t, 170e3, s.Range(170e3, 250e3))
	assert.Equal(t, 210e3, s.Range(170e3, 250e3))
	assert.Equal(t, 5.0, s.Range(5, 5))
}

func TestChanceAndIndex(t *testing.T) {
	s := New(&fixed{floats: []float64{0.1, 0.9}, ints: []int{3, 35}})
	assert.True(t, s.Chance())
	assert.False(t, s.Chance())
	assert.Equal(t, 3, s.Index())
	assert.Equal(t, 3, s.Index())
	assert.Equal(t, 0, s.Intn(0))
}

func TestNewSeeded(t *testing.T) {
	a, seed := NewSeeded(99)
	b, _ := NewSeeded(99)
	assert.Equal(t, int64(99), seed)
	assert.Equal(t, a.Int63(), b.Int63())

	_, generated := NewSeeded(0)
	assert.NotZero(t, generated)
}
