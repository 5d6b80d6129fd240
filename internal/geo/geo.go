package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// Campaign space is a flat per-system Cartesian frame in meters, so points
// are stored as plain XYZ geometry with no spatial reference.

// ErrInvalidCoordinates is returned when the coordinates are invalid
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// Vec3FromString parses a string in the format "x,y" or "x,y,z".
func Vec3FromString(coords string) (core.Vec3, error) {
	parts := strings.Split(coords, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return core.Vec3{}, ErrInvalidCoordinates
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return core.Vec3{}, ErrInvalidCoordinates
		}
		v[i] = f
	}
	return core.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// PointFromString parses "x,y" or "x,y,z" into an XYZ point.
func PointFromString(coords string) (geom.Point, error) {
	v, err := Vec3FromString(coords)
	if err != nil {
		return geom.NewEmptyPoint(geom.DimXYZ), err
	}
	return Point(v)
}

// Point converts a campaign location into an XYZ point.
func Point(v core.Vec3) (geom.Point, error) {
	p, err := geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: v.X, Y: v.Y},
		Z:    v.Z,
		Type: geom.DimXYZ,
	})
	if err != nil {
		return geom.NewEmptyPoint(geom.DimXYZ), fmt.Errorf("%w: %v", ErrInvalidCoordinates, err)
	}
	return p, nil
}

// Vec3 converts an XYZ point back to a campaign location. Empty points
// give the origin.
func Vec3(p geom.Point) core.Vec3 {
	c, ok := p.Coordinates()
	if !ok {
		return core.Vec3{}
	}
	return core.Vec3{X: c.X, Y: c.Y, Z: c.Z}
}
