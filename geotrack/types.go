package geotrack

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb"
	"github.com/tomfrankkirk/tourmapper/option"
)

// TrackPoint is a single recorded GPS fix.
type TrackPoint struct {
	Lat, Lon  float64
	Time      time.Time
	Elevation option.Option[float64]
}

func (p TrackPoint) Point() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

func (p TrackPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

// Ride is the content of one track file. Points are ordered by time and
// Distance and Climb hold one value per point, relative to the preceding point.
type Ride struct {
	Name     string
	Points   []TrackPoint
	Distance []float64
	Climb    []float64
}

// Start returns the timestamp of the first point, which identifies the ride.
func (r Ride) Start() time.Time {
	return r.First().Time
}

func (r Ride) First() TrackPoint {
	return r.Points[0]
}

func (r Ride) Last() TrackPoint {
	return r.Points[len(r.Points)-1]
}

// TotalDistance is the ride length in meters.
func (r Ride) TotalDistance() float64 {
	return sum(r.Distance)
}

// TotalClimb is the accumulated ascent in meters.
func (r Ride) TotalClimb() float64 {
	return sum(r.Climb)
}

func (r Ride) LineString() orb.LineString {
	ls := make(orb.LineString, len(r.Points))
	for i, p := range r.Points {
		ls[i] = p.Point()
	}
	return ls
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
