package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tomfrankkirk/tourmapper/cmd/serve"
	"github.com/tomfrankkirk/tourmapper/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tour map with on demand photo loading",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", config.DefaultServeAddress(), "Address to listen on")
	bindFlag(serveCmd.Flags().Lookup("addr"), config.KeyServeAddress)

	serveCmd.Flags().StringArray("map-option", nil, "Leaflet map option as key=value")
}
