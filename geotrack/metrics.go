package geotrack

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// Projection is a spherical azimuthal equidistant projection around Origin.
// Planar coordinates are meters; distances close to the origin are accurate
// enough to sum up track lengths.
type Projection struct {
	Origin orb.Point
}

// NewProjection centers a projection on the bounds of the given line.
func NewProjection(ls orb.LineString) Projection {
	return Projection{Origin: ls.Bound().Center()}
}

// ToPlane maps a geographic point (lon, lat in degrees) onto the plane.
func (p Projection) ToPlane(pt orb.Point) orb.Point {
	lat0, lon0 := radians(p.Origin.Lat()), radians(p.Origin.Lon())
	lat, dLon := radians(pt.Lat()), radians(pt.Lon())-lon0

	c := centralAngle(lat0, lon0, lat, lon0+dLon)
	k := 1.0
	if c > 0 {
		k = c / math.Sin(c)
	}

	x := orb.EarthRadius * k * math.Cos(lat) * math.Sin(dLon)
	y := orb.EarthRadius * k * (math.Cos(lat0)*math.Sin(lat) - math.Sin(lat0)*math.Cos(lat)*math.Cos(dLon))

	return orb.Point{x, y}
}

// ToGeo is the inverse of ToPlane.
func (p Projection) ToGeo(pt orb.Point) orb.Point {
	rho := math.Hypot(pt[0], pt[1])
	if rho == 0 {
		return p.Origin
	}

	lat0, lon0 := radians(p.Origin.Lat()), radians(p.Origin.Lon())
	c := rho / orb.EarthRadius

	lat := math.Asin(math.Cos(c)*math.Sin(lat0) + pt[1]*math.Sin(c)*math.Cos(lat0)/rho)
	lon := lon0 + math.Atan2(
		pt[0]*math.Sin(c),
		rho*math.Cos(lat0)*math.Cos(c)-pt[1]*math.Sin(lat0)*math.Sin(c),
	)

	return orb.Point{degrees(lon), degrees(lat)}
}

// segmentDistances returns the distance in meters from each point to its
// predecessor, zero for the first point.
func segmentDistances(ls orb.LineString) []float64 {
	distances := make([]float64, len(ls))
	if len(ls) < 2 {
		return distances
	}

	proj := NewProjection(ls)
	planarLine := project.LineString(ls.Clone(), proj.ToPlane)

	for i := 1; i < len(planarLine); i++ {
		distances[i] = planar.Distance(planarLine[i-1], planarLine[i])
	}

	return distances
}

// climbs returns the non-negative elevation gain from each point to its
// predecessor. Missing elevations count as no gain.
func climbs(points []TrackPoint) []float64 {
	gains := make([]float64, len(points))

	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1].Elevation, points[i].Elevation
		if prev.IsNone() || curr.IsNone() {
			continue
		}

		gains[i] = math.Max(0, curr.Get()-prev.Get())
	}

	return gains
}

// centralAngle is the haversine angle between two positions in radians.
func centralAngle(lat1, lon1, lat2, lon2 float64) float64 {
	sinLat := math.Sin((lat2 - lat1) / 2)
	sinLon := math.Sin((lon2 - lon1) / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * math.Asin(math.Sqrt(math.Min(1, h)))
}

func radians(d float64) float64 {
	return d * math.Pi / 180
}

func degrees(r float64) float64 {
	return r * 180 / math.Pi
}
