package geotrack

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tomfrankkirk/tourmapper/filesystem"
)

// FeatureCollection exports rides as GeoJSON features in stage order.
func FeatureCollection(rides []Ride) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, ride := range rides {
		var geometry orb.Geometry = ride.LineString()
		if len(ride.Points) == 1 {
			geometry = ride.First().Point()
		}

		feature := geojson.NewFeature(geometry)
		feature.Properties["stage"] = i + 1
		feature.Properties["name"] = ride.Name
		feature.Properties["start"] = ride.Start().Format(time.RFC3339)
		feature.Properties["distance_m"] = ride.TotalDistance()
		feature.Properties["climb_m"] = ride.TotalClimb()

		fc.Append(feature)
	}

	return fc
}

// WriteGeoJSON writes the rides' feature collection to the given path.
func WriteGeoJSON(path string, rides []Ride) error {
	payload, err := FeatureCollection(rides).MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not serialize rides: %w", err)
	}

	return filesystem.WriteFileAtomic(path, payload, 0o666)
}
