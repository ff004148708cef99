package render

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomfrankkirk/tourmapper/config"
)

var ErrInvalidColor = errors.New("invalid color")

var colorNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

// ColorFor returns the palette color of the ride with the index, cycling
// through the palette. An empty palette yields the default line color.
func ColorFor(index int, palette []string) string {
	if len(palette) == 0 {
		return config.DefaultLineColor()
	}
	return palette[index%len(palette)]
}

// ParsePalette validates the colors of a palette. Hex colors are normalized,
// CSS color names are kept as they are.
func ParsePalette(colors []string) ([]string, error) {
	palette := make([]string, 0, len(colors))

	for _, c := range colors {
		c = strings.TrimSpace(c)

		if strings.HasPrefix(c, "#") {
			parsed, err := colorful.Hex(c)
			if err != nil {
				return nil, fmt.Errorf("%w '%s': %w", ErrInvalidColor, c, err)
			}
			palette = append(palette, parsed.Hex())
			continue
		}

		if !colorNamePattern.MatchString(c) {
			return nil, fmt.Errorf("%w '%s'", ErrInvalidColor, c)
		}

		palette = append(palette, strings.ToLower(c))
	}

	return palette, nil
}
