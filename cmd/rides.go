package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomfrankkirk/tourmapper/config"
	"github.com/tomfrankkirk/tourmapper/geotrack"
)

// ridesCmd represents the rides command
var ridesCmd = &cobra.Command{
	Use:   "rides",
	Short: "List the rides of the track directory with their metrics",
	RunE:  runRidesCmd,
}

func init() {
	rootCmd.AddCommand(ridesCmd)
}

func runRidesCmd(cmd *cobra.Command, args []string) error {
	if !config.HasTrackDirectory() {
		return fmt.Errorf("no track directory configured")
	}

	rides, err := geotrack.LoadRides(config.TrackDirectory())
	if err != nil {
		return err
	}

	home := rides[0].First()
	totalDistance, totalClimb := 0.0, 0.0

	for i, ride := range rides {
		_, farthest := ride.Farthest(home)

		fmt.Printf("%-3d %s  %-24s %7.1fkm %6.0fm  %6.1fkm from start\n",
			i+1,
			ride.Start().Format("2006-01-02"),
			ride.Name,
			ride.TotalDistance()/1000,
			ride.TotalClimb(),
			farthest,
		)

		totalDistance += ride.TotalDistance()
		totalClimb += ride.TotalClimb()
	}

	fmt.Printf("%d rides, %.1fkm, %.0fm ascent\n", len(rides), totalDistance/1000, totalClimb)

	return nil
}
