package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io/fs"
	"log"
	"math"
	"net/url"
	"strings"
	"text/template"

	"github.com/tomfrankkirk/tourmapper/images"
	"github.com/tomfrankkirk/tourmapper/res"
)

const (
	loadImageScript   = "scripts/load_image.js"
	popupLoaderScript = "scripts/popup_loader.js"
)

// PopupStyle is the display size of a photo inside its popup together with
// the width bounds of the popup.
type PopupStyle struct {
	Width, Height      int
	MinWidth, MaxWidth int
}

// FitToBox sizes an image of the given dimensions for a box. Landscape images
// take the full box width, all others the full box height. Unknown dimensions
// (zero or negative) fill the whole box.
func FitToBox(width, height, boxWidth, boxHeight int) PopupStyle {
	if width <= 0 || height <= 0 {
		return PopupStyle{Width: boxWidth, Height: boxHeight, MinWidth: boxWidth, MaxWidth: boxWidth}
	}

	if width > height {
		h := int(math.Round(float64(boxWidth) / (float64(width) / float64(height))))
		return PopupStyle{Width: boxWidth, Height: h, MinWidth: boxWidth, MaxWidth: boxWidth}
	}

	w := int(math.Round(float64(boxHeight) / (float64(height) / float64(width))))
	return PopupStyle{Width: w, Height: boxHeight, MinWidth: w, MaxWidth: w}
}

func (s PopupStyle) CSS() string {
	return fmt.Sprintf("width:%dpx; height:%dpx; object-fit:fill;", s.Width, s.Height)
}

// PopupStrategy decides how photos reach their popups.
type PopupStrategy interface {
	// Generate returns the popup markup for a photo and the script fragment
	// that has to run after the map was created, which may be empty.
	Generate(index int, photo images.Photo, style PopupStyle) (markup string, loader string, err error)

	// Prelude is emitted once before all loaders.
	Prelude() string
}

// EmbeddedPopupStrategy inlines every image as a base64 data URL.
type EmbeddedPopupStrategy struct {
	MaxSize int
}

func (s EmbeddedPopupStrategy) Generate(_ int, photo images.Photo, style PopupStyle) (string, string, error) {
	content, err := images.EncodeForEmbedding(photo.Path, s.MaxSize)
	if err != nil {
		return "", "", fmt.Errorf("embed '%s': %w", photo.Path, err)
	}

	markup := fmt.Sprintf(
		"<img src='data:image/jpeg;base64,%s' style='%s' />",
		base64.StdEncoding.EncodeToString(content),
		style.CSS(),
	)

	return markup, "", nil
}

func (EmbeddedPopupStrategy) Prelude() string {
	return ""
}

// DeferredPopupStrategy leaves an empty image in each popup and fetches the
// photo from BaseURL when its marker is clicked.
type DeferredPopupStrategy struct {
	BaseURL string
	MapVar  string

	prelude string
	loader  *template.Template
}

type loaderPayload struct {
	Index     int
	Filename  string
	URL       string
	MapVar    string
	MarkerVar string
	PopupVar  string
}

func NewDeferredPopupStrategy(baseURL, mapVar string, scripts fs.FS) (*DeferredPopupStrategy, error) {
	prelude, err := fs.ReadFile(scripts, loadImageScript)
	if err != nil {
		return nil, fmt.Errorf("failed to load image loading script: %w", err)
	}

	loader, err := template.ParseFS(scripts, popupLoaderScript)
	if err != nil {
		return nil, fmt.Errorf("failed to load popup loader template: %w", err)
	}

	return &DeferredPopupStrategy{
		BaseURL: baseURL,
		MapVar:  mapVar,
		prelude: string(prelude),
		loader:  loader,
	}, nil
}

func (s *DeferredPopupStrategy) Generate(index int, photo images.Photo, style PopupStyle) (string, string, error) {
	markup := fmt.Sprintf("<img style='%s' alt='Loading image'/>", style.CSS())

	payload := loaderPayload{
		Index:     index,
		Filename:  photo.Filename(),
		URL:       s.ImageURL(photo.Filename()),
		MapVar:    s.MapVar,
		MarkerVar: "marker_" + PhotoID(index),
		PopupVar:  "popup_" + PhotoID(index),
	}

	var buf bytes.Buffer
	if err := s.loader.Execute(&buf, payload); err != nil {
		return "", "", fmt.Errorf("popup loader for '%s': %w", photo.Path, err)
	}

	return markup, buf.String(), nil
}

func (s *DeferredPopupStrategy) Prelude() string {
	return s.prelude
}

// ImageURL is the address a photo is fetched from.
func (s *DeferredPopupStrategy) ImageURL(filename string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + url.PathEscape(filename)
}

// NewPopupStrategy selects deferred loading when a remote image URL is
// configured and embedding otherwise. Scripts default to the bundled ones.
func NewPopupStrategy(opts Options, scripts fs.FS) (PopupStrategy, error) {
	if scripts == nil {
		scripts = res.Scripts
	}

	if opts.RemoteImageURL != "" {
		log.Printf("images will be loaded on demand from '%s'", opts.RemoteImageURL)
		return NewDeferredPopupStrategy(opts.RemoteImageURL, MapVar(), scripts)
	}

	log.Printf("images will be embedded within the output file")
	return EmbeddedPopupStrategy{MaxSize: opts.EmbedMaxSize}, nil
}

// PhotoID is the scene id of the marker and popup of the photo with the index.
func PhotoID(index int) string {
	return fmt.Sprintf("image_%d", index)
}
