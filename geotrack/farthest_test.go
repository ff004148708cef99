package geotrack

import (
	"math"
	"testing"
	"time"
)

func TestFarthest(t *testing.T) {
	start := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)
	ride := NewRide("out-and-back.gpx", []TrackPoint{
		{Lat: 47, Lon: 11, Time: start},
		{Lat: 47.5, Lon: 11, Time: start.Add(time.Hour)},
		{Lat: 47.1, Lon: 11, Time: start.Add(2 * time.Hour)},
	})

	p, dkm := ride.Farthest(ride.First())
	if p.Lat != 47.5 {
		t.Fatalf("unexpected farthest point %v", p)
	}
	// Half a degree of latitude is roughly 55.6km.
	if math.Abs(dkm-55.6) > 0.5 {
		t.Fatalf("unexpected distance %.2fkm", dkm)
	}

	single := NewRide("single.gpx", []TrackPoint{{Lat: 47, Lon: 11, Time: start}})
	if _, dkm := single.Farthest(single.First()); dkm != 0 {
		t.Fatalf("expected zero distance, got %f", dkm)
	}
}
