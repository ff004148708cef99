package serve

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tomfrankkirk/tourmapper/config"
	"github.com/tomfrankkirk/tourmapper/render"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	if !config.HasTrackDirectory() {
		return fmt.Errorf("no track directory configured")
	}

	mapOptions, err := cmd.Flags().GetStringArray("map-option")
	if err != nil {
		return err
	}

	opts, err := render.OptionsFromConfig(mapOptions)
	if err != nil {
		return err
	}

	opts.RemoteImageURL = config.DefaultServePhotoPath()

	artifact, err := render.Render(opts)
	if err != nil {
		return err
	}

	r := newRouter(newServeAPI(artifact))

	address := config.ServeAddress()
	log.Printf("serving map of %d rides at %s", len(artifact.Rides), address)

	return r.Run(address)
}

func newRouter(api *serveAPI) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", api.ServeIndex)
	r.GET("/rides.geojson", api.ServeRides)
	r.GET("/rides/:stage", api.ServeRide)

	if dir := api.artifact.Options.ImageDirectory; dir != "" {
		r.Static(config.DefaultServePhotoPath(), dir)
	}

	return r
}

type serveAPI struct {
	artifact *render.Artifact
}

func newServeAPI(artifact *render.Artifact) *serveAPI {
	return &serveAPI{artifact: artifact}
}
