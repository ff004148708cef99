package geotrack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomfrankkirk/tourmapper/filesystem"
)

type testPoint struct {
	lat, lon float64
	ele      *float64
	time     time.Time
}

func ele(v float64) *float64 {
	return &v
}

func writeGPX(t *testing.T, path string, points ...testPoint) {
	t.Helper()

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="tourmap-test" xmlns="http://www.topografix.com/GPX/1/1">
<trk><name>test</name><trkseg>
`)
	for _, p := range points {
		fmt.Fprintf(&b, `<trkpt lat="%f" lon="%f">`, p.lat, p.lon)
		if p.ele != nil {
			fmt.Fprintf(&b, "<ele>%f</ele>", *p.ele)
		}
		fmt.Fprintf(&b, "<time>%s</time></trkpt>\n", p.time.UTC().Format(time.RFC3339))
	}
	b.WriteString("</trkseg></trk>\n</gpx>\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o666); err != nil {
		t.Fatalf("write gpx: %v", err)
	}
}

func TestLoadRidesSortedByStart(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)

	// File names are ordered opposite to the start times.
	writeGPX(t, filepath.Join(dir, "a.gpx"),
		testPoint{lat: 47.1, lon: 11.1, ele: ele(600), time: day.Add(48 * time.Hour)},
	)
	writeGPX(t, filepath.Join(dir, "b.GPX"),
		testPoint{lat: 47.0, lon: 11.0, ele: ele(500), time: day.Add(24 * time.Hour)},
	)
	writeGPX(t, filepath.Join(dir, "c.gpx"),
		testPoint{lat: 46.9, lon: 10.9, ele: ele(400), time: day},
	)
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0o666); err != nil {
		t.Fatalf("write: %v", err)
	}

	rides, err := LoadRides(dir)
	if err != nil {
		t.Fatalf("load rides: %v", err)
	}

	if len(rides) != 3 {
		t.Fatalf("expected 3 rides, got %d", len(rides))
	}

	wantNames := []string{"c.gpx", "b.GPX", "a.gpx"}
	for i, ride := range rides {
		if ride.Name != wantNames[i] {
			t.Fatalf("ride %d: expected %s, got %s", i, wantNames[i], ride.Name)
		}
		if i > 0 && !rides[i-1].Start().Before(ride.Start()) {
			t.Fatalf("rides not sorted by start")
		}
	}
}

func TestLoadRideSortsPointsAndComputesMetrics(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)
	path := filepath.Join(dir, "ride.gpx")

	writeGPX(t, path,
		testPoint{lat: 47.002, lon: 11.0, ele: ele(480), time: start.Add(2 * time.Minute)},
		testPoint{lat: 47.000, lon: 11.0, ele: ele(500), time: start},
		testPoint{lat: 47.001, lon: 11.0, ele: ele(510), time: start.Add(time.Minute)},
		testPoint{lat: 47.003, lon: 11.0, time: start.Add(3 * time.Minute)},
	)

	ride, err := LoadRide(path)
	if err != nil {
		t.Fatalf("load ride: %v", err)
	}

	for i := 1; i < len(ride.Points); i++ {
		if ride.Points[i].Time.Before(ride.Points[i-1].Time) {
			t.Fatalf("points not sorted by time")
		}
	}

	if len(ride.Distance) != 4 || len(ride.Climb) != 4 {
		t.Fatalf("expected one metric per point")
	}
	if ride.Distance[0] != 0 || ride.Climb[0] != 0 {
		t.Fatalf("expected metrics to start with zero")
	}

	// 500 -> 510 -> 480 -> missing
	wantClimb := []float64{0, 10, 0, 0}
	for i, want := range wantClimb {
		if diff := ride.Climb[i] - want; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("climb[%d]: expected %f, got %f", i, want, ride.Climb[i])
		}
	}

	// 0.001 degrees latitude is roughly 111 m.
	for i := 1; i < 4; i++ {
		if ride.Distance[i] < 105 || ride.Distance[i] > 117 {
			t.Fatalf("distance[%d]: unexpected %f", i, ride.Distance[i])
		}
	}
	if ride.Points[0].Elevation.IsNone() || ride.Points[3].Elevation.IsSome() {
		t.Fatalf("unexpected elevation presence")
	}
}

func TestLoadRidesNoTracks(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("x"), 0o666); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadRides(dir)
	if !errors.Is(err, ErrNoTracks) {
		t.Fatalf("expected ErrNoTracks, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-found category, got %v", err)
	}
}

func TestLoadRidesParseError(t *testing.T) {
	dir := t.TempDir()
	writeGPX(t, filepath.Join(dir, "good.gpx"),
		testPoint{lat: 47, lon: 11, time: time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)},
	)
	bad := filepath.Join(dir, "bad.gpx")
	if err := os.WriteFile(bad, []byte("this is not a gpx document"), 0o666); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadRides(dir)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if filepath.Base(parseErr.File) != "bad.gpx" {
		t.Fatalf("expected offending file, got %s", parseErr.File)
	}
}

func TestLoadRideWithoutPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gpx")
	writeGPX(t, path)

	_, err := LoadRide(path)
	if !errors.Is(err, ErrNoPoints) {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
}

func TestLoadRidesDuplicateStart(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)
	writeGPX(t, filepath.Join(dir, "one.gpx"), testPoint{lat: 47, lon: 11, time: start})
	writeGPX(t, filepath.Join(dir, "two.gpx"), testPoint{lat: 48, lon: 12, time: start})

	if _, err := LoadRides(dir); !errors.Is(err, ErrDuplicateRideStart) {
		t.Fatalf("expected ErrDuplicateRideStart, got %v", err)
	}
}

func TestGPXExtensionsIgnoreCase(t *testing.T) {
	for _, name := range []string{"a.gpx", "b.GPX", "c.Gpx"} {
		if !filesystem.HasExtension(name, GPXExtensions()) {
			t.Errorf("%s is not recognized as track", name)
		}
	}
	if filesystem.HasExtension("d.kml", GPXExtensions()) {
		t.Errorf("kml must not be recognized as track")
	}
}
