package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	var episode int

	cmd := &cobra.Command{
		Use:   "path <character-id>",
		Short: "Show a character's journey split at the cursor",
		Long: "Prints the settled polyline of completed hops and the actively " +
			"animating segment for the episode at the cursor.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, args[0], episode)
		},
	}

	cmd.Flags().IntVarP(&episode, "episode", "e", 0, "Global episode index")

	return cmd
}

func runPath(cmd *cobra.Command, characterID string, episode int) error {
	return withEngine(cmd.Context(), func(d *Deps) error {
		path, err := d.Engine.SegmentPath(characterID, episode)
		if err != nil {
			return err
		}

		if len(path.Settled) == 0 && path.Active == nil {
			fmt.Printf("%s has no journey yet.\n", characterID)
			return nil
		}

		if len(path.Settled) > 0 {
			fmt.Printf("Settled path (%d hops):\n", path.SettledHops())
			for _, coord := range path.Settled {
				fmt.Printf("  (%6.1f, %6.1f)\n", coord.X, coord.Y)
			}
		}

		if path.Active != nil {
			emphasis := ""
			if path.Active.IsFastTravel {
				emphasis = "  [fast travel]"
			}
			fmt.Printf("Active segment:%s\n", emphasis)
			fmt.Printf("  from    (%6.1f, %6.1f)\n", path.Active.From.X, path.Active.From.Y)
			fmt.Printf("  control (%6.1f, %6.1f)\n", path.Active.Control.X, path.Active.Control.Y)
			fmt.Printf("  to      (%6.1f, %6.1f)\n", path.Active.To.X, path.Active.To.Y)
		}

		return nil
	})
}
