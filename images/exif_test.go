package images

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/tomfrankkirk/tourmapper/images/imagetest"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		info     GPSInfo
		lat, lon float64
	}{
		{GPSInfo{LatRef: "S", Lat: [3]float64{10, 30, 0}, LonRef: "W", Lon: [3]float64{20, 15, 0}}, -10.5, -20.25},
		{GPSInfo{LatRef: "N", Lat: [3]float64{47, 15, 36}, LonRef: "E", Lon: [3]float64{11, 24, 0}}, 47.26, 11.4},
		{GPSInfo{LatRef: "N", Lat: [3]float64{0, 0, 0}, LonRef: "W", Lon: [3]float64{0, 0, 36}}, 0, -0.01},
	}

	for _, test := range tests {
		lat, lon, err := test.info.Decimal()
		if err != nil {
			t.Fatalf("decimal of %+v: %v", test.info, err)
		}
		if !near(lat, test.lat) || !near(lon, test.lon) {
			t.Fatalf("expected (%f, %f), got (%f, %f)", test.lat, test.lon, lat, lon)
		}
	}
}

func TestDecimalInvalidReference(t *testing.T) {
	for _, info := range []GPSInfo{
		{LatRef: "X", LonRef: "E"},
		{LatRef: "N", LonRef: "Q"},
		{LatRef: "", LonRef: ""},
	} {
		if _, _, err := info.Decimal(); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("expected ErrInvalidFormat for %+v, got %v", info, err)
		}
	}
}

func TestReadLatLon(t *testing.T) {
	content, err := imagetest.JPEG(8, 4, &imagetest.GPS{
		LatRef: "S", Lat: [3]float64{10, 30, 0},
		LonRef: "W", Lon: [3]float64{20, 15, 0},
	})
	if err != nil {
		t.Fatalf("jpeg: %v", err)
	}

	lat, lon, err := ReadLatLon(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !near(lat, -10.5) || !near(lon, -20.25) {
		t.Fatalf("expected (-10.5, -20.25), got (%f, %f)", lat, lon)
	}
}

func TestReadLatLonInvalidReference(t *testing.T) {
	content, err := imagetest.JPEG(8, 4, &imagetest.GPS{
		LatRef: "X", Lat: [3]float64{10, 30, 0},
		LonRef: "E", Lon: [3]float64{20, 15, 0},
	})
	if err != nil {
		t.Fatalf("jpeg: %v", err)
	}

	if _, _, err := ReadLatLon(bytes.NewReader(content)); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestReadLatLonWithoutExif(t *testing.T) {
	content, err := imagetest.JPEG(8, 4, nil)
	if err != nil {
		t.Fatalf("jpeg: %v", err)
	}

	if _, _, err := ReadLatLon(bytes.NewReader(content)); !errors.Is(err, ErrMissingGPSData) {
		t.Fatalf("expected ErrMissingGPSData, got %v", err)
	}
}
