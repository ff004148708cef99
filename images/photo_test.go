package images

import (
	"bytes"
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomfrankkirk/tourmapper/filesystem"
	"github.com/tomfrankkirk/tourmapper/images/imagetest"
)

var innsbruck = &imagetest.GPS{
	LatRef: "N", Lat: [3]float64{47, 15, 36},
	LonRef: "E", Lon: [3]float64{11, 24, 0},
}

func TestLoadPhoto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG_0001.JPG")
	imagetest.WriteJPEG(t, path, 40, 20, innsbruck)

	photo, err := LoadPhoto(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if photo.Width != 40 || photo.Height != 20 {
		t.Fatalf("unexpected size %dx%d", photo.Width, photo.Height)
	}
	if !photo.IsLandscape() {
		t.Fatalf("expected landscape")
	}
	if !near(photo.Lat, 47.26) || !near(photo.Lon, 11.4) {
		t.Fatalf("unexpected position (%f, %f)", photo.Lat, photo.Lon)
	}
	if loc := photo.Location(); !near(loc.Lat(), 47.26) || !near(loc.Lon(), 11.4) {
		t.Fatalf("unexpected location %v", loc)
	}
	if photo.Filename() != "IMG_0001.JPG" {
		t.Fatalf("unexpected filename %s", photo.Filename())
	}
}

func TestLoadPhotoWithoutGPS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.jpg")
	imagetest.WriteJPEG(t, path, 10, 10, nil)

	if _, err := LoadPhoto(path); !errors.Is(err, ErrMissingGPSData) {
		t.Fatalf("expected ErrMissingGPSData, got %v", err)
	}
}

func TestCollectImagePaths(t *testing.T) {
	dir := t.TempDir()
	imagetest.WriteJPEG(t, filepath.Join(dir, "a.jpg"), 4, 4, innsbruck)
	imagetest.WriteJPEG(t, filepath.Join(dir, "b.JPEG"), 4, 4, innsbruck)
	for _, name := range []string{"c.png", "notes.txt", "track.gpx"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o666); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	paths, err := CollectImagePaths(dir)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 images, got %v", paths)
	}
}

func TestLoadPhotos(t *testing.T) {
	dir := t.TempDir()
	imagetest.WriteJPEG(t, filepath.Join(dir, "a.jpg"), 4, 8, innsbruck)
	imagetest.WriteJPEG(t, filepath.Join(dir, "b.jpg"), 8, 4, innsbruck)
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o666); err != nil {
		t.Fatalf("write: %v", err)
	}

	var progress bytes.Buffer
	photos, err := LoadPhotos(dir, &progress)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(photos))
	}
	if photos[0].IsLandscape() || !photos[1].IsLandscape() {
		t.Fatalf("unexpected orientation")
	}
}

func TestLoadPhotosEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o666); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadPhotos(dir, nil)
	if !errors.Is(err, ErrNoImages) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}
}

func TestLoadPhotosFailsOnInvalidPhoto(t *testing.T) {
	dir := t.TempDir()
	imagetest.WriteJPEG(t, filepath.Join(dir, "a.jpg"), 4, 4, innsbruck)
	imagetest.WriteJPEG(t, filepath.Join(dir, "b.jpg"), 4, 4, nil)

	if _, err := LoadPhotos(dir, nil); !errors.Is(err, ErrMissingGPSData) {
		t.Fatalf("expected ErrMissingGPSData, got %v", err)
	}
}

func TestEncodeForEmbedding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.jpg")
	imagetest.WriteJPEG(t, path, 120, 60, innsbruck)

	raw, err := EncodeForEmbedding(path, 0)
	if err != nil {
		t.Fatalf("raw: %v", err)
	}
	original, _ := os.ReadFile(path)
	if !bytes.Equal(raw, original) {
		t.Fatalf("expected raw file content")
	}

	small, err := EncodeForEmbedding(path, 30)
	if err != nil {
		t.Fatalf("scaled: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(small))
	if err != nil {
		t.Fatalf("decode scaled: %v", err)
	}
	if cfg.Width != 30 || cfg.Height != 15 {
		t.Fatalf("expected 30x15, got %dx%d", cfg.Width, cfg.Height)
	}

	same, err := EncodeForEmbedding(path, 500)
	if err != nil {
		t.Fatalf("unscaled: %v", err)
	}
	if !bytes.Equal(same, original) {
		t.Fatalf("expected small image to be kept as is")
	}
}

func TestExtensionsIgnoreCase(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPG", "c.jpeg", "d.JPEG"} {
		if !filesystem.HasExtension(name, Extensions()) {
			t.Errorf("%s is not recognized as photo", name)
		}
	}
	for _, name := range []string{"e.png", "f.jpg.txt", "jpg"} {
		if filesystem.HasExtension(name, Extensions()) {
			t.Errorf("%s must not be recognized as photo", name)
		}
	}
}
