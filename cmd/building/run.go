package building

import (
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tomfrankkirk/tourmapper/config"
	"github.com/tomfrankkirk/tourmapper/filesystem"
	"github.com/tomfrankkirk/tourmapper/render"
)

func RunBuildCmd(cmd *cobra.Command, args []string) error {
	if !config.HasTrackDirectory() {
		return fmt.Errorf("no track directory configured")
	}

	mapOptions, err := cmd.Flags().GetStringArray("map-option")
	if err != nil {
		return err
	}

	overwrite, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}

	opts, err := render.OptionsFromConfig(mapOptions)
	if err != nil {
		return err
	}

	log.Printf("track directory: %s", filesystem.Abs(opts.TrackDirectory))
	if opts.ImageDirectory != "" {
		log.Printf("image directory: %s", filesystem.Abs(opts.ImageDirectory))
	}

	if !overwrite && filesystem.Exists(opts.OutputFile) && isatty.IsTerminal(os.Stdin.Fd()) {
		confirmed, err := confirmOverwrite(opts.OutputFile)
		if err != nil {
			return err
		}
		if !confirmed {
			log.Printf("keeping existing '%s'", opts.OutputFile)
			return nil
		}
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		opts.Progress = os.Stderr
	}

	artifact, err := render.WriteMap(opts)
	if err != nil {
		return err
	}

	log.Printf("map of %d rides and %d photos written", len(artifact.Rides), len(artifact.Photos))

	return nil
}

func confirmOverwrite(path string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite existing file '%s'?", path),
	}

	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}

	return confirmed, nil
}
