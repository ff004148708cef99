package images

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/schollz/progressbar/v3"
	"github.com/tomfrankkirk/tourmapper/filesystem"
)

var ErrNoImages = fmt.Errorf("no images found: %w", os.ErrNotExist)

// Extensions are the file extensions of photos, compared ignoring case.
func Extensions() []string {
	return []string{".jpg", ".jpeg"}
}

// Photo is a geotagged image.
type Photo struct {
	Path          string
	Width, Height int
	Lat, Lon      float64
}

func (p Photo) Filename() string {
	return filepath.Base(p.Path)
}

func (p Photo) Location() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

func (p Photo) IsLandscape() bool {
	return p.Width > p.Height
}

// LoadPhoto reads the dimensions and GPS position of an image file.
func LoadPhoto(path string) (Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return Photo{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Photo{}, fmt.Errorf("image decode of '%s' failed: %w", path, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Photo{}, err
	}

	lat, lon, err := ReadLatLon(f)
	if err != nil {
		return Photo{}, fmt.Errorf("photo '%s': %w", path, err)
	}

	return Photo{
		Path:   path,
		Width:  cfg.Width,
		Height: cfg.Height,
		Lat:    lat,
		Lon:    lon,
	}, nil
}

// CollectImagePaths returns the image files of a directory. Files of other
// types are skipped.
func CollectImagePaths(directory string) ([]string, error) {
	return filesystem.GatherFiles([]string{directory}, Extensions())
}

// LoadPhotos loads every image of the directory. A single photo without valid
// GPS data fails the whole call. Progress is drawn to progress unless it is nil.
func LoadPhotos(directory string, progress io.Writer) ([]Photo, error) {
	paths, err := CollectImagePaths(directory)
	if err != nil {
		return nil, fmt.Errorf("scanning image directory: %w", err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoImages, directory)
	}

	log.Printf("found %d images in '%s'", len(paths), directory)

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(
			len(paths),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("reading photos"),
		)
	}

	photos := make([]Photo, 0, len(paths))
	for _, path := range paths {
		photo, err := LoadPhoto(path)
		if err != nil {
			return nil, err
		}

		photos = append(photos, photo)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return photos, nil
}
