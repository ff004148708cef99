package render

import (
	"io"
	"io/fs"
	"maps"
	"slices"

	"github.com/paulmach/orb"
	"github.com/tomfrankkirk/tourmapper/config"
	"github.com/tomfrankkirk/tourmapper/geotrack"
	"github.com/tomfrankkirk/tourmapper/option"
	"github.com/tomfrankkirk/tourmapper/util/dates"
)

// Options configure a map build. Options are passed by value and never
// modified in place, WithDefaults returns a completed copy.
type Options struct {
	TrackDirectory string
	ImageDirectory string
	RemoteImageURL string
	OutputFile     string
	GeoJSONFile    string

	ImageWidth   int
	ImageHeight  int
	EmbedMaxSize int

	Colors    []string
	RideTexts []string

	Center     option.Option[orb.Point]
	Zoom       option.Option[int]
	MapOptions map[string]any

	Tiles            string
	TilesAttribution string
	Title            string
	Locale           string

	// Progress receives the photo loading progress bar. Nil disables it.
	Progress io.Writer

	// Scripts provides the popup loading scripts. Nil selects the bundled ones.
	Scripts fs.FS
}

// WithDefaults fills every unset option. Center and zoom are taken from the
// map options when not set explicitly, then the center defaults to the mean of
// the rides' first points. The title defaults to the date range of the rides.
func (o Options) WithDefaults(rides []geotrack.Ride) Options {
	o.Colors = slices.Clone(o.Colors)
	o.RideTexts = slices.Clone(o.RideTexts)
	o.MapOptions = maps.Clone(o.MapOptions)
	if o.MapOptions == nil {
		o.MapOptions = make(map[string]any)
	}

	o.Center = o.Center.Or(mapOptionCenter(o.MapOptions))
	o.Zoom = o.Zoom.Or(mapOptionZoom(o.MapOptions))

	if o.Center.IsNone() && len(rides) > 0 {
		o.Center = option.Some(MeanStart(rides))
	}
	if o.Zoom.IsNone() {
		o.Zoom = option.Some(config.DefaultZoom())
	}
	if o.OutputFile == "" {
		o.OutputFile = config.DefaultOutputFile()
	}
	if o.ImageWidth <= 0 {
		o.ImageWidth = config.DefaultImageWidth()
	}
	if o.ImageHeight <= 0 {
		o.ImageHeight = config.DefaultImageHeight()
	}
	if len(o.Colors) == 0 {
		o.Colors = []string{config.DefaultLineColor()}
	}
	if o.Locale == "" {
		o.Locale = config.DefaultLocale()
	}
	if o.Tiles == "" {
		o.Tiles = config.DefaultTiles()
	}
	if o.TilesAttribution == "" {
		o.TilesAttribution = config.DefaultTilesAttribution()
	}
	if o.Title == "" && len(rides) > 0 {
		o.Title = dates.FormatRange(rides[0].Start(), rides[len(rides)-1].Last().Time, dates.ParseLocale(o.Locale))
	}

	return o
}

// MeanStart is the unweighted mean of the first point of every ride.
func MeanStart(rides []geotrack.Ride) orb.Point {
	var lat, lon float64
	for _, r := range rides {
		lat += r.First().Lat
		lon += r.First().Lon
	}

	n := float64(len(rides))
	return orb.Point{lon / n, lat / n}
}

// mapOptionCenter reads a `[lat, lon]` center from renderer map options.
func mapOptionCenter(options map[string]any) option.Option[orb.Point] {
	values, ok := options["center"].([]any)
	if !ok || len(values) != 2 {
		return option.None[orb.Point]()
	}

	lat, okLat := toFloat(values[0])
	lon, okLon := toFloat(values[1])
	if !okLat || !okLon {
		return option.None[orb.Point]()
	}

	return option.Some(orb.Point{lon, lat})
}

func mapOptionZoom(options map[string]any) option.Option[int] {
	zoom, ok := toFloat(options["zoom"])
	if !ok {
		return option.None[int]()
	}
	return option.Some(int(zoom))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
