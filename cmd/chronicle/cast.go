package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCastCmd() *cobra.Command {
	var (
		episode int
		house   string
	)

	cmd := &cobra.Command{
		Use:   "cast",
		Short: "List the character roster at an episode",
		Long:  "Prints every character with the era icon and death status they hold at the cursor.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCast(cmd, episode, house)
		},
	}

	cmd.Flags().IntVarP(&episode, "episode", "e", 0, "Global episode index")
	cmd.Flags().StringVar(&house, "house", "", "Only show characters of this house")

	return cmd
}

func runCast(cmd *cobra.Command, episode int, house string) error {
	return withEngine(cmd.Context(), func(d *Deps) error {
		for _, ch := range d.Engine.Catalog().Characters() {
			if house != "" && !strings.EqualFold(ch.House, house) {
				continue
			}

			icon, err := d.Engine.ResolveEra(ch.ID, episode)
			if err != nil {
				return fmt.Errorf("resolving era for %s: %w", ch.ID, err)
			}

			status := "Alive"
			if d.Engine.CharacterDead(ch.ID, episode) {
				status = "Dead"
			}

			fmt.Printf("%s %-24s %-12s %s  (%.1f leagues)\n",
				icon, ch.Name, ch.House, status, d.Engine.CharacterDistance(ch.ID, episode))
		}

		reportSkipped(d.Engine.Skipped())
		return nil
	})
}
