package geo

import (
	"math"
	"testing"

	"github.com/starshatterwars/missiongen/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3FromString(t *testing.T) {
	tests := []struct {
		in   string
		want core.Vec3
	}{
		{"100.5,200.25,50.0", core.Vec3{X: 100.5, Y: 200.25, Z: 50}},
		{"100.5,200.25", core.Vec3{X: 100.5, Y: 200.25}},
		{"-100.5, -200.25, -50", core.Vec3{X: -100.5, Y: -200.25, Z: -50}},
		{"0,0,0", core.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Vec3FromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVec3FromString_Invalid(t *testing.T) {
	for _, in := range []string{"", "100", "abc,200", "100,abc", "1,2,abc", "1,2,3,4"} {
		_, err := Vec3FromString(in)
		assert.ErrorIs(t, err, ErrInvalidCoordinates, in)
	}
}

func TestPointFromString(t *testing.T) {
	p, err := PointFromString("10,20,30")
	require.NoError(t, err)
	assert.Equal(t, core.Vec3{X: 10, Y: 20, Z: 30}, Vec3(p))

	p, err = PointFromString("bad")
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, core.Vec3{}, Vec3(p))
}

func TestPoint_RejectsNonFinite(t *testing.T) {
	p, err := Point(core.Vec3{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.Equal(t, core.Vec3{X: 1, Y: 2, Z: 3}, Vec3(p))

	p, err = Point(core.Vec3{X: math.NaN(), Y: 2})
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	assert.True(t, p.IsEmpty())
}
