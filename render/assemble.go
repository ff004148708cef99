package render

import (
	"fmt"
	"log"

	"github.com/tomfrankkirk/tourmapper/filesystem"
	"github.com/tomfrankkirk/tourmapper/geotrack"
	"github.com/tomfrankkirk/tourmapper/images"
	"github.com/tomfrankkirk/tourmapper/leaflet"
)

const (
	MapID          = "basemap"
	PhotoClusterID = "photos"

	ridePopupMinWidth = 200
	ridePopupMaxWidth = 300
)

func MapVar() string {
	return "map_" + MapID
}

// Artifact is a rendered map together with the data it was built from.
type Artifact struct {
	Map     *leaflet.Map
	HTML    []byte
	Rides   []geotrack.Ride
	Photos  []images.Photo
	Options Options
}

// Render loads the rides and photos named by the options and assembles the
// map document.
func Render(opts Options) (*Artifact, error) {
	rides, err := geotrack.LoadRides(opts.TrackDirectory)
	if err != nil {
		return nil, err
	}

	if _, err := RideTexts(rides, opts.RideTexts); err != nil {
		return nil, err
	}

	var photos []images.Photo
	if opts.ImageDirectory != "" {
		photos, err = images.LoadPhotos(opts.ImageDirectory, opts.Progress)
		if err != nil {
			return nil, err
		}
	}

	return Assemble(rides, photos, opts)
}

// Assemble builds the map scene of rides and photos and renders it.
func Assemble(rides []geotrack.Ride, photos []images.Photo, opts Options) (*Artifact, error) {
	if len(rides) == 0 {
		return nil, geotrack.ErrNoTracks
	}

	opts = opts.WithDefaults(rides)

	palette, err := ParsePalette(opts.Colors)
	if err != nil {
		return nil, err
	}

	texts, err := RideTexts(rides, opts.RideTexts)
	if err != nil {
		return nil, err
	}

	m := leaflet.NewMap(MapID, opts.Center.Get(), opts.Zoom.Get())
	m.Title = opts.Title
	m.Options = opts.MapOptions
	m.Tiles = leaflet.NewTileLayer(opts.Tiles, opts.TilesAttribution)

	for i, ride := range rides {
		m.Add(leaflet.NewPolyLine(ride.LineString(), ColorFor(i, palette)))

		marker := leaflet.NewMarker(ride.Last().Point())
		marker.Icon = leaflet.NewIcon("flag-checkered", "blue")
		marker.Popup = leaflet.NewPopup(texts[i], ridePopupMinWidth, ridePopupMaxWidth)
		m.Add(marker)
	}

	var fragments []string
	if len(photos) > 0 {
		fragments, err = addPhotos(m, photos, opts)
		if err != nil {
			return nil, err
		}
	}

	html, err := m.RenderBytes()
	if err != nil {
		return nil, fmt.Errorf("rendering map: %w", err)
	}

	if len(fragments) > 0 {
		html, err = leaflet.InjectScript(html, fragments...)
		if err != nil {
			return nil, fmt.Errorf("injecting popup loaders: %w", err)
		}
	}

	return &Artifact{
		Map:     m,
		HTML:    html,
		Rides:   rides,
		Photos:  photos,
		Options: opts,
	}, nil
}

// addPhotos adds the clustered photo layer and returns the script fragments
// that have to run after the scene was created.
func addPhotos(m *leaflet.Map, photos []images.Photo, opts Options) ([]string, error) {
	strategy, err := NewPopupStrategy(opts, opts.Scripts)
	if err != nil {
		return nil, err
	}

	cluster := leaflet.NewMarkerCluster("photo_cluster")
	cluster.ID = PhotoClusterID

	var loaders []string
	for i, photo := range photos {
		style := FitToBox(photo.Width, photo.Height, opts.ImageWidth, opts.ImageHeight)

		markup, loader, err := strategy.Generate(i, photo, style)
		if err != nil {
			return nil, err
		}

		marker := leaflet.NewMarker(photo.Location())
		marker.ID = PhotoID(i)
		marker.Icon = leaflet.NewIcon("camera", "green")

		popup := leaflet.NewPopup(markup, style.MinWidth, style.MaxWidth)
		popup.ID = PhotoID(i)
		marker.Popup = popup

		cluster.Add(marker)

		if loader != "" {
			loaders = append(loaders, loader)
		}
	}

	m.Add(cluster)

	if len(loaders) == 0 {
		return nil, nil
	}

	return append([]string{strategy.Prelude()}, loaders...), nil
}

// WriteMap renders the map and writes it to the output file, and the rides as
// GeoJSON when a GeoJSON file is configured.
func WriteMap(opts Options) (*Artifact, error) {
	artifact, err := Render(opts)
	if err != nil {
		return nil, err
	}

	output := artifact.Options.OutputFile
	log.Printf("writing output to '%s'", output)

	if err := filesystem.WriteFileAtomic(output, artifact.HTML, 0o644); err != nil {
		return nil, fmt.Errorf("writing map: %w", err)
	}

	if opts.GeoJSONFile != "" {
		log.Printf("writing rides to '%s'", opts.GeoJSONFile)
		if err := geotrack.WriteGeoJSON(opts.GeoJSONFile, artifact.Rides); err != nil {
			return nil, err
		}
	}

	return artifact, nil
}
