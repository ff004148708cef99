package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/tomfrankkirk/tourmapper/geotrack"
	"github.com/yuin/goldmark"
)

var ErrRideTextMismatch = errors.New("number of ride texts does not match number of rides")

// RideTexts returns the popup text of every ride. Without texts a summary of
// each ride is generated, otherwise the Markdown texts are converted to HTML.
func RideTexts(rides []geotrack.Ride, texts []string) ([]string, error) {
	if len(texts) == 0 {
		result := make([]string, len(rides))
		for i, r := range rides {
			result[i] = DefaultRideText(i, r)
		}
		return result, nil
	}

	if len(texts) != len(rides) {
		return nil, fmt.Errorf("%w: %d texts for %d rides", ErrRideTextMismatch, len(texts), len(rides))
	}

	md := goldmark.New()
	result := make([]string, len(texts))
	for i, text := range texts {
		var buf bytes.Buffer
		if err := md.Convert([]byte(text), &buf); err != nil {
			return nil, fmt.Errorf("ride text %d: %w", i+1, err)
		}
		result[i] = strings.TrimSpace(buf.String())
	}

	return result, nil
}

func DefaultRideText(index int, ride geotrack.Ride) string {
	return fmt.Sprintf("Stage %d: %.0fkm, %.0fm ascent", index+1, ride.TotalDistance()/1000, ride.TotalClimb())
}
