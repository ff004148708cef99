package geotrack

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"

	"github.com/tkrajina/gpxgo/gpx"
	"github.com/tomfrankkirk/tourmapper/filesystem"
	"github.com/tomfrankkirk/tourmapper/option"
)

var (
	ErrNoTracks           = fmt.Errorf("no track files found: %w", fs.ErrNotExist)
	ErrNoPoints           = errors.New("track contains no points")
	ErrDuplicateRideStart = errors.New("rides share the same start time")
)

// GPXExtensions are the file extensions of track files, compared ignoring case.
func GPXExtensions() []string {
	return []string{".gpx"}
}

// ParseError reports a track file whose points could not be extracted.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not extract GPS points from '%s': %s", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadRides parses all GPX files in the given directory. The rides are
// ordered by their start time.
func LoadRides(directory string) ([]Ride, error) {
	files, err := filesystem.GatherFiles([]string{directory}, GPXExtensions())
	if err != nil {
		return nil, fmt.Errorf("scanning track directory: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoTracks, directory)
	}

	rides := make([]Ride, 0, len(files))
	byStart := make(map[int64]string, len(files))

	for _, file := range files {
		log.Printf("parsing %s", filepath.Base(file))

		ride, err := LoadRide(file)
		if err != nil {
			return nil, err
		}

		key := ride.Start().UnixNano()
		if other, ok := byStart[key]; ok {
			return nil, fmt.Errorf("%w: '%s' and '%s' start at %s", ErrDuplicateRideStart, other, file, ride.Start())
		}
		byStart[key] = file

		rides = append(rides, ride)
	}

	sort.SliceStable(rides, func(i, j int) bool {
		return rides[i].Start().Before(rides[j].Start())
	})

	return rides, nil
}

// LoadRide parses a single GPX file into a ride.
func LoadRide(trackFilePath string) (Ride, error) {
	points, err := loadGPXTrack(trackFilePath)
	if err != nil {
		return Ride{}, &ParseError{File: trackFilePath, Err: err}
	}

	if len(points) == 0 {
		return Ride{}, &ParseError{File: trackFilePath, Err: ErrNoPoints}
	}

	return NewRide(filepath.Base(trackFilePath), points), nil
}

// NewRide orders the points by time and computes the per-point metrics.
func NewRide(name string, points []TrackPoint) Ride {
	sorted := make([]TrackPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	ride := Ride{Name: name, Points: sorted}
	ride.Distance = segmentDistances(ride.LineString())
	ride.Climb = climbs(sorted)

	return ride
}

func loadGPXTrack(trackFilePath string) (points []TrackPoint, err error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}

	for _, track := range gpxData.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				elevation := option.None[float64]()
				if p.Elevation.NotNull() {
					elevation = option.Some(p.Elevation.Value())
				}

				points = append(points, TrackPoint{
					Lat:       p.Latitude,
					Lon:       p.Longitude,
					Time:      p.Timestamp,
					Elevation: elevation,
				})
			}
		}
	}

	return
}
