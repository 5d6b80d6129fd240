// Package scatter produces the bounded random offsets used to place
// elements near a reference point.
package scatter

import (
	"math"
	"math/rand"
	"time"

	"github.com/starshatterwars/missiongen/pkg/core"
)

// PointRadius bounds the offset returned by Point.
const PointRadius = 20e3

// IndexRange is the number of values Index can return.
const IndexRange = 16

// Source is the random source the generator draws from. *rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSeeded returns a source for the given seed. A zero seed is replaced
// by the current time; the seed actually used is returned.
func NewSeeded(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Scatter wraps a Source with the placement primitives.
type Scatter struct {
	src Source
}

// New creates a Scatter drawing from src.
func New(src Source) *Scatter {
	return &Scatter{src: src}
}

// InSphere returns an offset uniformly distributed within a sphere of
// the given radius.
func (s *Scatter) InSphere(radius float64) core.Vec3 {
	if radius <= 0 {
		return core.Vec3{}
	}
	z := 2*s.src.Float64() - 1
	theta := 2 * math.Pi * s.src.Float64()
	r := radius * math.Cbrt(s.src.Float64())
	planar := math.Sqrt(1 - z*z)
	return core.Vec3{
		X: r * planar * math.Cos(theta),
		Y: r * planar * math.Sin(theta),
		Z: r * z,
	}
}

// Point is the standard placement offset, uniform within PointRadius.
func (s *Scatter) Point() core.Vec3 {
	return s.InSphere(PointRadius)
}

// Direction returns a unit vector in the system plane.
func (s *Scatter) Direction() core.Vec3 {
	theta := 2 * math.Pi * s.src.Float64()
	return core.Vec3{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Range returns a value in [min, max).
func (s *Scatter) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*s.src.Float64()
}

// Chance is a fair coin.
func (s *Scatter) Chance() bool {
	return s.src.Float64() < 0.5
}

// Index returns a value in [0, IndexRange).
func (s *Scatter) Index() int {
	return s.src.Intn(IndexRange)
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (s *Scatter) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.src.Intn(n)
}
