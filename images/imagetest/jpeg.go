// Package imagetest writes JPEG fixtures carrying GPS EXIF tags.
package imagetest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"testing"
)

// GPS describes the position tags to embed. Refs are single letters.
type GPS struct {
	LatRef string
	Lat    [3]float64
	LonRef string
	Lon    [3]float64
}

// JPEG encodes a width x height image. A non-nil gps adds an EXIF block.
func JPEG(width, height int, gps *GPS) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	encoded := buf.Bytes()
	if gps == nil {
		return encoded, nil
	}

	// SOI, then APP1, then the remaining segments.
	out := append([]byte{}, encoded[:2]...)
	out = append(out, exifSegment(*gps)...)
	return append(out, encoded[2:]...), nil
}

// WriteJPEG writes a fixture to path and fails the test on error.
func WriteJPEG(t testing.TB, path string, width, height int, gps *GPS) {
	t.Helper()

	content, err := JPEG(width, height, gps)
	if err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	if err := os.WriteFile(path, content, 0o666); err != nil {
		t.Fatalf("write jpeg: %v", err)
	}
}

const (
	typeASCII    = 2
	typeLong     = 4
	typeRational = 5

	ifd0Offset   = 8
	gpsIFDOffset = ifd0Offset + 2 + 12 + 4
	latOffset    = gpsIFDOffset + 2 + 4*12 + 4
	lonOffset    = latOffset + 3*8
)

func exifSegment(gps GPS) []byte {
	var tiff bytes.Buffer
	w16 := func(v uint16) { _ = binary.Write(&tiff, binary.LittleEndian, v) }
	w32 := func(v uint32) { _ = binary.Write(&tiff, binary.LittleEndian, v) }

	ref := func(tag uint16, s string) {
		w16(tag)
		w16(typeASCII)
		w32(2)
		var value [4]byte
		if len(s) > 0 {
			value[0] = s[0]
		}
		tiff.Write(value[:])
	}

	tiff.WriteString("II")
	w16(42)
	w32(ifd0Offset)

	// IFD0: GPS IFD pointer only.
	w16(1)
	w16(0x8825)
	w16(typeLong)
	w32(1)
	w32(gpsIFDOffset)
	w32(0)

	// GPS IFD
	w16(4)
	ref(0x0001, gps.LatRef)
	w16(0x0002)
	w16(typeRational)
	w32(3)
	w32(latOffset)
	ref(0x0003, gps.LonRef)
	w16(0x0004)
	w16(typeRational)
	w32(3)
	w32(lonOffset)
	w32(0)

	for _, values := range [][3]float64{gps.Lat, gps.Lon} {
		for _, v := range values {
			w32(uint32(math.Round(v * 1000)))
			w32(1000)
		}
	}

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)
	length := len(payload) + 2

	return append([]byte{0xFF, 0xE1, byte(length >> 8), byte(length)}, payload...)
}
