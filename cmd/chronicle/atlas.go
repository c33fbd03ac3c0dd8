package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newAtlasCmd() *cobra.Command {
	var (
		location string
		episode  int
	)

	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Browse the map's locations",
		Long:  "Lists every charted location, or shows one location's detail with the characters present at the cursor.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if location != "" {
				return runAtlasDetail(cmd, location, episode)
			}
			return runAtlasList(cmd)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Show one location's detail")
	cmd.Flags().IntVarP(&episode, "episode", "e", 0, "Global episode index for presence")

	return cmd
}

func runAtlasList(cmd *cobra.Command) error {
	return withEngine(cmd.Context(), func(d *Deps) error {
		locations := d.Engine.Catalog().Locations()
		sort.Slice(locations, func(i, j int) bool {
			return locations[i].ID < locations[j].ID
		})

		for _, loc := range locations {
			fmt.Printf("%-16s %-24s %-16s (%.1f, %.1f)\n",
				loc.ID, loc.Name, loc.Region, loc.Coord.X, loc.Coord.Y)
		}
		return nil
	})
}

func runAtlasDetail(cmd *cobra.Command, locationID string, episode int) error {
	return withEngine(cmd.Context(), func(d *Deps) error {
		loc := d.Engine.Catalog().Location(locationID)
		if loc == nil {
			return fmt.Errorf("unknown location %q", locationID)
		}

		fmt.Printf("%s (%s)\n", loc.Name, loc.ID)
		fmt.Printf("Region:     %s\n", loc.Region)
		fmt.Printf("Coordinate: (%.1f, %.1f)\n", loc.Coord.X, loc.Coord.Y)
		if loc.Importance > 0 {
			fmt.Printf("Importance: %d\n", loc.Importance)
		}
		if loc.Description != "" {
			fmt.Printf("\n%s\n", loc.Description)
		}

		present := d.Engine.PresenceAt(locationID, episode)
		if len(present) > 0 {
			fmt.Println("\nPresent:")
			for _, ch := range present {
				status := "Alive"
				if d.Engine.CharacterDead(ch.ID, episode) {
					status = "Dead"
				}
				fmt.Printf("  %-24s %s\n", ch.Name, status)
			}
		}

		reportSkipped(d.Engine.Skipped())
		return nil
	})
}
