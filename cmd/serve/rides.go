package serve

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tomfrankkirk/tourmapper/geotrack"
)

func (api *serveAPI) ServeRides(c *gin.Context) {
	c.JSON(http.StatusOK, geotrack.FeatureCollection(api.artifact.Rides))
}

// ServeRide returns the points and metrics of a single stage. Stages are
// numbered from one.
func (api *serveAPI) ServeRide(c *gin.Context) {
	stage, err := strconv.Atoi(c.Param("stage"))
	if err != nil || stage < 1 || stage > len(api.artifact.Rides) {
		c.String(http.StatusNotFound, "not found")
		return
	}

	ride := api.artifact.Rides[stage-1]

	c.JSON(
		http.StatusOK,
		gin.H{
			"stage":    stage,
			"name":     ride.Name,
			"start":    ride.Start(),
			"distance": ride.TotalDistance(),
			"climb":    ride.TotalClimb(),
			"points":   ride.Points,
		},
	)
}
