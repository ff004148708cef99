package geotrack

import "github.com/jftuga/geodist"

// Farthest returns the point of the ride with the largest great circle
// distance from home and that distance in kilometers.
func (r Ride) Farthest(home TrackPoint) (TrackPoint, float64) {
	origin := geodist.Coord{Lat: home.Lat, Lon: home.Lon}

	maxDist := 0.0
	maxPoint := r.First()

	for _, p := range r.Points {
		_, dkm := geodist.HaversineDistance(origin, geodist.Coord{Lat: p.Lat, Lon: p.Lon})
		if dkm > maxDist {
			maxDist = dkm
			maxPoint = p
		}
	}

	return maxPoint, maxDist
}
