package render

import (
	"errors"
	"testing"
	"time"

	"github.com/tomfrankkirk/tourmapper/geotrack"
	"github.com/tomfrankkirk/tourmapper/option"
)

func testRides(n int) []geotrack.Ride {
	start := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)

	rides := make([]geotrack.Ride, n)
	for i := range rides {
		day := start.Add(time.Duration(i) * 24 * time.Hour)
		rides[i] = geotrack.NewRide("ride.gpx", []geotrack.TrackPoint{
			{Lat: 47, Lon: 11 + float64(i), Time: day, Elevation: option.Some(500.0)},
			{Lat: 47.1, Lon: 11 + float64(i), Time: day.Add(time.Hour), Elevation: option.Some(750.0)},
		})
	}

	return rides
}

func TestRideTextsDefault(t *testing.T) {
	texts, err := RideTexts(testRides(2), nil)
	if err != nil {
		t.Fatalf("texts: %v", err)
	}

	if texts[0] != "Stage 1: 11km, 250m ascent" || texts[1] != "Stage 2: 11km, 250m ascent" {
		t.Fatalf("unexpected texts %q", texts)
	}
}

func TestRideTextsMarkdown(t *testing.T) {
	texts, err := RideTexts(testRides(1), []string{"**Innsbruck** to Bozen"})
	if err != nil {
		t.Fatalf("texts: %v", err)
	}

	if texts[0] != "<p><strong>Innsbruck</strong> to Bozen</p>" {
		t.Fatalf("unexpected text %q", texts[0])
	}
}

func TestRideTextsMismatch(t *testing.T) {
	_, err := RideTexts(testRides(3), []string{"one", "two"})
	if !errors.Is(err, ErrRideTextMismatch) {
		t.Fatalf("expected ErrRideTextMismatch, got %v", err)
	}
}
