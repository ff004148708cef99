package render

import (
	"github.com/tomfrankkirk/tourmapper/config"
)

// OptionsFromConfig collects the build options from the configuration.
// Map option pairs of the form `key=value` take precedence over the map
// options of the configuration file.
func OptionsFromConfig(mapOptionPairs []string) (Options, error) {
	center, err := config.Center()
	if err != nil {
		return Options{}, err
	}

	mapOptions, err := config.MapOptions(mapOptionPairs)
	if err != nil {
		return Options{}, err
	}

	texts := config.RideTexts()
	if file := config.RideTextFile(); file != "" {
		texts, err = config.LoadRideTexts(file)
		if err != nil {
			return Options{}, err
		}
	}

	return Options{
		TrackDirectory: config.TrackDirectory(),
		ImageDirectory: config.ImageDirectory(),
		RemoteImageURL: config.RemoteImageURL(),
		OutputFile:     config.OutputFile(),
		GeoJSONFile:    config.GeoJSONFile(),
		ImageWidth:     config.ImageWidth(),
		ImageHeight:    config.ImageHeight(),
		EmbedMaxSize:   config.EmbedMaxSize(),
		Colors:         config.LineColors(),
		RideTexts:      texts,
		Center:         center,
		Zoom:           config.Zoom(),
		MapOptions:     mapOptions,
		Tiles:          config.Tiles(),
		Title:          config.Title(),
		Locale:         config.Locale(),
	}, nil
}
