package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tomfrankkirk/tourmapper/config"
	"github.com/tomfrankkirk/tourmapper/filesystem"
	"github.com/tomfrankkirk/tourmapper/images"
)

// photosCmd represents the photos command
var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Prepare the photos for on demand loading",
	Long: `Photos writes a copy of every geotagged photo of the image directory,
scaled down to fit the given size, into the output directory. The output
directory is meant to be published at the remote image URL of the map.`,
	RunE: runPhotos,
}

var photosMaxSize *int

func runPhotos(cmd *cobra.Command, args []string) error {
	imageDirectory := config.ImageDirectory()
	if imageDirectory == "" {
		return fmt.Errorf("no image directory configured")
	}

	outputDirectory := cmd.Flag("output").Value.String()
	if err := filesystem.CreateDirectoryIfNotExists(outputDirectory); err != nil {
		return fmt.Errorf("could not ensure output directory: %w", err)
	}

	var progress io.Writer
	if isatty.IsTerminal(os.Stderr.Fd()) {
		progress = os.Stderr
	}

	photos, err := images.LoadPhotos(imageDirectory, progress)
	if err != nil {
		return err
	}

	size := *photosMaxSize
	for _, photo := range photos {
		target := filepath.Join(outputDirectory, photo.Filename())

		if size <= 0 || (photo.Width <= size && photo.Height <= size) {
			if err := filesystem.Copy(photo.Path, target); err != nil {
				return err
			}
			continue
		}

		content, err := images.EncodeForEmbedding(photo.Path, size)
		if err != nil {
			return fmt.Errorf("scaling '%s' failed: %w", photo.Path, err)
		}

		if err := filesystem.WriteFileAtomic(target, content, 0o644); err != nil {
			return err
		}
	}

	log.Printf("prepared %d photos in '%s'", len(photos), outputDirectory)

	return nil
}

func init() {
	genCmd.AddCommand(photosCmd)

	photosCmd.Flags().StringP("output", "o", "photos", "Output directory")
	photosMaxSize = photosCmd.Flags().IntP("size", "s", 1600, "Maximum photo width, height")
}
