package geo

import (
	"encoding/json"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/starshatterwars/missiongen/internal/mission"
	"github.com/starshatterwars/missiongen/pkg/core"
)

// NewRoute builds an XYZ LineString through points.
func NewRoute(points []core.Vec3) (geom.LineString, error) {
	if len(points) < 2 {
		return geom.LineString{}, fmt.Errorf("route must have at least 2 points, got %d", len(points))
	}
	flat := make([]float64, 0, len(points)*3)
	for _, p := range points {
		flat = append(flat, p.X, p.Y, p.Z)
	}
	ls, err := geom.NewLineString(geom.NewSequence(flat, geom.DimXYZ))
	if err != nil {
		return geom.LineString{}, fmt.Errorf("invalid route: %w", err)
	}
	return ls, nil
}

// ElementRoute is the flight plan of e in m: its start location followed by
// each nav point. ok is false when the element has no nav points.
func ElementRoute(m *mission.Mission, e *mission.Element) (ls geom.LineString, ok bool) {
	navs := m.NavPoints(e)
	if len(navs) == 0 {
		return geom.LineString{}, false
	}
	points := make([]core.Vec3, 0, len(navs)+1)
	points = append(points, e.Location)
	for _, nav := range navs {
		points = append(points, nav.Location)
	}
	ls, err := NewRoute(points)
	return ls, err == nil
}

// Length3D is the route length including the Z axis. LineString.Length
// measures in the XY plane only.
func Length3D(ls geom.LineString) float64 {
	seq := ls.Coordinates()
	var total float64
	for i := 1; i < seq.Length(); i++ {
		a, b := seq.Get(i-1), seq.Get(i)
		total += core.Vec3{X: a.X, Y: a.Y, Z: a.Z}.Distance(core.Vec3{X: b.X, Y: b.Y, Z: b.Z})
	}
	return total
}

// RoutePoints returns the vertices of ls as campaign locations.
func RoutePoints(ls geom.LineString) []core.Vec3 {
	seq := ls.Coordinates()
	if seq.Length() == 0 {
		return nil
	}
	out := make([]core.Vec3, seq.Length())
	for i := range out {
		c := seq.Get(i)
		out[i] = core.Vec3{X: c.X, Y: c.Y, Z: c.Z}
	}
	return out
}

// ParseRoute parses a JSON array of coordinates into an XYZ LineString.
// Input format: "[[x1,y1,z1],[x2,y2,z2],...]"; z may be omitted.
func ParseRoute(input string) (geom.LineString, error) {
	var coords [][]float64
	if err := json.Unmarshal([]byte(input), &coords); err != nil {
		return geom.LineString{}, fmt.Errorf("failed to parse route JSON: %w", err)
	}
	points := make([]core.Vec3, len(coords))
	for i, c := range coords {
		switch len(c) {
		case 2:
			points[i] = core.Vec3{X: c[0], Y: c[1]}
		case 3:
			points[i] = core.Vec3{X: c[0], Y: c[1], Z: c[2]}
		default:
			return geom.LineString{}, fmt.Errorf("coordinate %d has %d values", i, len(c))
		}
	}
	return NewRoute(points)
}
