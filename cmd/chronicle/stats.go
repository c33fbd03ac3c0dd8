package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var (
		episode int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show realm statistics at an episode",
		Long:  "Tallies survivors and casualties and prints the travel-distance leaderboard.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, episode, limit)
		},
	}

	cmd.Flags().IntVarP(&episode, "episode", "e", 0, "Global episode index")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Leaderboard rows to print (default from config)")

	return cmd
}

func runStats(cmd *cobra.Command, episode, limit int) error {
	return withEngine(cmd.Context(), func(d *Deps) error {
		stats := d.Engine.AggregateStats(episode)

		fmt.Printf("Survivors: %d\n", stats.Alive)
		fmt.Printf("Deceased:  %d\n", stats.Dead)

		if limit <= 0 {
			limit = d.Config.Engine.LeaderboardLimit
		}
		if limit > len(stats.Leaderboard) {
			limit = len(stats.Leaderboard)
		}

		fmt.Println("\nTravel leaderboard (leagues):")
		for i, entry := range stats.Leaderboard[:limit] {
			name := entry.CharacterID
			if ch := d.Engine.Catalog().Character(entry.CharacterID); ch != nil {
				name = ch.Name
			}
			fmt.Printf("%2d. %-24s %7.1f\n", i+1, name, entry.Distance)
		}

		reportSkipped(d.Engine.Skipped())
		return nil
	})
}
