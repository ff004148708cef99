package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/viper"
	"github.com/tomfrankkirk/tourmapper/option"
	"gopkg.in/yaml.v2"
)

var (
	KeyTrackDirectory = "tracks.directory"
	KeyImageDirectory = "images.directory"
	KeyRemoteImageURL = "images.remote_url"
	KeyImageWidth     = "images.width"
	KeyImageHeight    = "images.height"
	KeyEmbedMaxSize   = "images.embed_max_size"
	KeyOutputFile     = "output"
	KeyGeoJSONFile    = "geojson"
	KeyLineColors     = "map.colors"
	KeyCenter         = "map.center"
	KeyZoom           = "map.zoom"
	KeyMapOptions     = "map.options"
	KeyTiles          = "map.tiles"
	KeyTitle          = "map.title"
	KeyLocale         = "map.locale"
	KeyRideTexts      = "rides.texts"
	KeyRideTextFile   = "rides.text_file"
	KeyServeAddress   = "serve.address"
)

var ErrInvalidMapOption = errors.New("invalid map option")

func HasTrackDirectory() bool {
	return viper.IsSet(KeyTrackDirectory) && len(TrackDirectory()) > 0
}

func TrackDirectory() string {
	return viper.GetString(KeyTrackDirectory)
}

func ImageDirectory() string {
	return viper.GetString(KeyImageDirectory)
}

func RemoteImageURL() string {
	return viper.GetString(KeyRemoteImageURL)
}

func OutputFile() string {
	return stringOr(KeyOutputFile, DefaultOutputFile())
}

func GeoJSONFile() string {
	return viper.GetString(KeyGeoJSONFile)
}

func ImageWidth() int {
	return intOr(KeyImageWidth, DefaultImageWidth())
}

func ImageHeight() int {
	return intOr(KeyImageHeight, DefaultImageHeight())
}

func EmbedMaxSize() int {
	return viper.GetInt(KeyEmbedMaxSize)
}

func LineColors() []string {
	return viper.GetStringSlice(KeyLineColors)
}

func Tiles() string {
	return stringOr(KeyTiles, DefaultTiles())
}

func Title() string {
	return viper.GetString(KeyTitle)
}

func Locale() string {
	return stringOr(KeyLocale, DefaultLocale())
}

func RideTexts() []string {
	return viper.GetStringSlice(KeyRideTexts)
}

func RideTextFile() string {
	return viper.GetString(KeyRideTextFile)
}

func ServeAddress() string {
	return stringOr(KeyServeAddress, DefaultServeAddress())
}

// Zoom returns the configured initial zoom level, if any.
func Zoom() option.Option[int] {
	if !viper.IsSet(KeyZoom) {
		return option.None[int]()
	}
	return option.Some(viper.GetInt(KeyZoom))
}

// Center returns the configured map center. The configuration holds the
// coordinate as `[lat, lon]`.
func Center() (option.Option[orb.Point], error) {
	values := viper.GetStringSlice(KeyCenter)
	if len(values) == 0 {
		return option.None[orb.Point](), nil
	}

	if len(values) != 2 {
		return option.None[orb.Point](), fmt.Errorf("map center needs latitude and longitude, got %d values", len(values))
	}

	var latLon [2]float64
	for i, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return option.None[orb.Point](), fmt.Errorf("parse map center: %w", err)
		}
		latLon[i] = f
	}

	return option.Some(orb.Point{latLon[1], latLon[0]}), nil
}

// MapOptions returns the renderer options from the configuration file merged
// with `key=value` pairs. Pairs take precedence.
func MapOptions(pairs []string) (map[string]any, error) {
	options, err := configuredMapOptions()
	if err != nil {
		return nil, err
	}

	parsed, err := ParseMapOptions(pairs)
	if err != nil {
		return nil, err
	}

	for k, v := range parsed {
		options[k] = v
	}

	return options, nil
}

// configuredMapOptions reads `map.options` from a YAML configuration file
// directly, since viper lowercases keys and Leaflet option names are camel
// case. Other sources go through viper.
func configuredMapOptions() (map[string]any, error) {
	options := make(map[string]any)

	if path := viper.ConfigFileUsed(); isYAMLFile(path) {
		content, err := os.ReadFile(path)
		if err == nil {
			var raw struct {
				Map struct {
					Options yaml.MapSlice `yaml:"options"`
				} `yaml:"map"`
			}
			if err := yaml.Unmarshal(content, &raw); err != nil {
				return nil, fmt.Errorf("parse map options of '%s': %w", path, err)
			}

			if len(raw.Map.Options) > 0 {
				for _, item := range raw.Map.Options {
					options[fmt.Sprint(item.Key)] = normalizeYAML(item.Value)
				}
				return options, nil
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read configuration file: %w", err)
		}
	}

	for k, v := range viper.GetStringMap(KeyMapOptions) {
		options[k] = normalizeYAML(v)
	}

	return options, nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// normalizeYAML converts nested YAML mappings into values encoding/json can
// marshal.
func normalizeYAML(v any) any {
	switch value := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(value))
		for _, item := range value {
			m[fmt.Sprint(item.Key)] = normalizeYAML(item.Value)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(value))
		for k, item := range value {
			m[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return m
	case []any:
		list := make([]any, len(value))
		for i, item := range value {
			list[i] = normalizeYAML(item)
		}
		return list
	default:
		return v
	}
}

// ParseMapOptions parses `key=value` pairs. Values holding valid JSON are
// decoded, everything else is kept as a string.
func ParseMapOptions(pairs []string) (map[string]any, error) {
	options := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || len(key) == 0 {
			return nil, fmt.Errorf("%w: '%s', expected key=value", ErrInvalidMapOption, pair)
		}

		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			options[key] = decoded
		} else {
			options[key] = value
		}
	}

	return options, nil
}

// LoadRideTexts reads a YAML list of ride texts.
func LoadRideTexts(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ride text file: %w", err)
	}

	var texts []string
	if err := yaml.Unmarshal(content, &texts); err != nil {
		return nil, fmt.Errorf("parse ride text file '%s': %w", path, err)
	}

	return texts, nil
}

func stringOr(key, fallback string) string {
	if s := viper.GetString(key); len(s) > 0 {
		return s
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if i := viper.GetInt(key); i > 0 {
		return i
	}
	return fallback
}

func DefaultOutputFile() string {
	return "tourmap.html"
}

func DefaultImageWidth() int {
	return 500
}

func DefaultImageHeight() int {
	return 400
}

func DefaultZoom() int {
	return 7
}

func DefaultLineColor() string {
	return "#3388ff"
}

func DefaultLocale() string {
	return "en_US"
}

func DefaultTiles() string {
	return "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
}

func DefaultTilesAttribution() string {
	return `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
}

func DefaultServeAddress() string {
	return ":8000"
}

func DefaultServePhotoPath() string {
	return "/photos"
}
