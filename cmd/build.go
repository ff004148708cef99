package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tomfrankkirk/tourmapper/cmd/building"
	"github.com/tomfrankkirk/tourmapper/config"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the tour map document",
	Long: `Build reads all GPX tracks of the track directory and the geotagged
photos of the image directory and writes a standalone Leaflet map.

Photos are embedded into the document unless a remote image URL is given,
in which case they are fetched from there when a popup is opened.`,
	RunE: building.RunBuildCmd,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	flags := buildCmd.Flags()

	flags.StringP("output", "o", config.DefaultOutputFile(), "Output HTML file")
	bindFlag(flags.Lookup("output"), config.KeyOutputFile)

	flags.String("remote-image-url", "", "Base URL the photos are loaded from on demand")
	bindFlag(flags.Lookup("remote-image-url"), config.KeyRemoteImageURL)

	flags.Int("image-width", config.DefaultImageWidth(), "Popup width of landscape photos")
	bindFlag(flags.Lookup("image-width"), config.KeyImageWidth)

	flags.Int("image-height", config.DefaultImageHeight(), "Popup height of portrait photos")
	bindFlag(flags.Lookup("image-height"), config.KeyImageHeight)

	flags.Int("embed-max-size", 0, "Scale embedded photos down to this size, 0 embeds the original files")
	bindFlag(flags.Lookup("embed-max-size"), config.KeyEmbedMaxSize)

	flags.StringSlice("colors", nil, "Colors of the ride lines, used in turn")
	bindFlag(flags.Lookup("colors"), config.KeyLineColors)

	flags.StringArray("ride-text", nil, "Popup text of a ride, Markdown, once per ride")
	bindFlag(flags.Lookup("ride-text"), config.KeyRideTexts)

	flags.String("ride-text-file", "", "YAML file with a list of ride texts")
	bindFlag(flags.Lookup("ride-text-file"), config.KeyRideTextFile)

	flags.StringSlice("center", nil, "Initial map center as lat,lon")
	bindFlag(flags.Lookup("center"), config.KeyCenter)

	flags.Int("zoom", config.DefaultZoom(), "Initial zoom level")
	bindFlag(flags.Lookup("zoom"), config.KeyZoom)

	flags.StringArray("map-option", nil, "Leaflet map option as key=value")

	flags.String("tiles", config.DefaultTiles(), "Tile server URL template")
	bindFlag(flags.Lookup("tiles"), config.KeyTiles)

	flags.String("title", "", "Document title, defaults to the date range of the tour")
	bindFlag(flags.Lookup("title"), config.KeyTitle)

	flags.String("locale", config.DefaultLocale(), "Locale of the default title")
	bindFlag(flags.Lookup("locale"), config.KeyLocale)

	flags.String("geojson", "", "Additionally write the rides as GeoJSON to this file")
	bindFlag(flags.Lookup("geojson"), config.KeyGeoJSONFile)

	flags.BoolP("yes", "y", false, "Overwrite an existing output file without asking")
}
