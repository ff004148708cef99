package cmd

import (
	"github.com/spf13/cobra"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate files published next to a tour map",
	Long: `Gen prepares files a map needs when it is not fully standalone.

A map built with a remote image URL fetches its photos on demand; use
"gen photos" to write web sized copies of the image directory for upload
to that URL.`,
}

func init() {
	rootCmd.AddCommand(genCmd)
}
