package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStoryCmd() *cobra.Command {
	var episode int

	cmd := &cobra.Command{
		Use:   "story",
		Short: "Show an episode's events",
		Long:  "Prints the episode's title and the notable events anchored to it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStory(cmd, episode)
		},
	}

	cmd.Flags().IntVarP(&episode, "episode", "e", 0, "Global episode index")

	return cmd
}

func runStory(cmd *cobra.Command, episode int) error {
	return withEngine(cmd.Context(), func(d *Deps) error {
		catalog := d.Engine.Catalog()
		index := catalog.ClampIndex(episode)
		ep := catalog.Episode(index)

		fmt.Printf("S%dE%d: %s\n", ep.Season, ep.Number, ep.Title)

		events := d.Engine.EventsAt(index)
		if len(events) == 0 {
			fmt.Println("\nNo chronicled events.")
			return nil
		}

		fmt.Println()
		for _, ev := range events {
			loc := "unknown"
			if l := catalog.Location(ev.LocationID); l != nil {
				loc = l.Name
			}
			icon := ev.Icon
			if icon == "" {
				icon = "*"
			}
			fmt.Printf("%s [%s] %s @ %s\n", icon, ev.Type, ev.Title, loc)
			if ev.Description != "" {
				fmt.Printf("    %s\n", ev.Description)
			}
		}
		return nil
	})
}
