package images

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

var (
	ErrMissingGPSData = errors.New("no GPS data")
	ErrInvalidFormat  = errors.New("unsupported GPS data format")
)

// GPSInfo holds the raw GPS position tags of an image. Lat and Lon are
// degrees, minutes and seconds.
type GPSInfo struct {
	LatRef string
	Lat    [3]float64
	LonRef string
	Lon    [3]float64
}

// Decimal converts the position to signed decimal degrees.
func (g GPSInfo) Decimal() (lat, lon float64, err error) {
	if (g.LatRef != "N" && g.LatRef != "S") || (g.LonRef != "E" && g.LonRef != "W") {
		return 0, 0, fmt.Errorf("%w: references '%s', '%s' not in (N|S, E|W)", ErrInvalidFormat, g.LatRef, g.LonRef)
	}

	lat = dmsToDecimal(g.Lat)
	lon = dmsToDecimal(g.Lon)

	if g.LatRef == "S" {
		lat = -lat
	}
	if g.LonRef == "W" {
		lon = -lon
	}

	return lat, lon, nil
}

func dmsToDecimal(dms [3]float64) float64 {
	return dms[0] + dms[1]/60 + dms[2]/3600
}

// ReadLatLon decodes the EXIF block from r and returns the GPS position.
func ReadLatLon(r io.Reader) (lat, lon float64, err error) {
	x, err := exif.Decode(r)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMissingGPSData, err)
	}

	info, err := ExtractGPS(x)
	if err != nil {
		return 0, 0, err
	}

	return info.Decimal()
}

// ExtractGPS reads the GPS position tags from decoded EXIF data.
func ExtractGPS(x *exif.Exif) (GPSInfo, error) {
	var (
		info GPSInfo
		err  error
	)

	if info.LatRef, err = refTag(x, exif.GPSLatitudeRef); err != nil {
		return info, err
	}
	if info.Lat, err = dmsTag(x, exif.GPSLatitude); err != nil {
		return info, err
	}
	if info.LonRef, err = refTag(x, exif.GPSLongitudeRef); err != nil {
		return info, err
	}
	if info.Lon, err = dmsTag(x, exif.GPSLongitude); err != nil {
		return info, err
	}

	return info, nil
}

func refTag(x *exif.Exif, name exif.FieldName) (string, error) {
	tag, err := x.Get(name)
	if err != nil {
		return "", fmt.Errorf("%w: missing %s", ErrMissingGPSData, name)
	}

	s, err := tag.StringVal()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}

	return strings.TrimSpace(strings.TrimRight(s, "\x00")), nil
}

func dmsTag(x *exif.Exif, name exif.FieldName) (dms [3]float64, err error) {
	tag, err := x.Get(name)
	if err != nil {
		return dms, fmt.Errorf("%w: missing %s", ErrMissingGPSData, name)
	}

	if tag.Count != 3 {
		return dms, fmt.Errorf("%w: %s has %d values, expected 3", ErrInvalidFormat, name, tag.Count)
	}

	for i := range dms {
		num, den, err := tag.Rat2(i)
		if err != nil {
			return dms, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
		}
		if den == 0 {
			return dms, fmt.Errorf("%w: %s has zero denominator", ErrInvalidFormat, name)
		}
		dms[i] = float64(num) / float64(den)
	}

	return dms, nil
}
