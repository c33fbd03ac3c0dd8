package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smile-plzz/chronicle-core/internal/domain/services"
)

func newPositionsCmd() *cobra.Command {
	var (
		episode    int
		placements []string
		follow     string
		zoom       float64
	)

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Resolve character positions at an episode",
		Long: "Resolves every character's coordinate and death status at the " +
			"given episode index. Placement flags switch to simulation mode, " +
			"overriding canonical history.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPositions(cmd, episode, placements, follow, zoom)
		},
	}

	cmd.Flags().IntVarP(&episode, "episode", "e", 0, "Global episode index")
	cmd.Flags().StringArrayVarP(&placements, "place", "p", nil, "Simulation placement CHARACTER=LOCATION (repeatable)")
	cmd.Flags().StringVar(&follow, "follow", "", "Character to center the camera on")
	cmd.Flags().Float64Var(&zoom, "zoom", 1.0, "Camera zoom factor")

	return cmd
}

func runPositions(cmd *cobra.Command, episode int, placements []string, follow string, zoom float64) error {
	overrides, err := parseOverrides(placements)
	if err != nil {
		return err
	}

	return withEngine(cmd.Context(), func(d *Deps) error {
		var mode services.Mode = services.Canonical{}
		if overrides != nil {
			mode = services.Simulation{Overrides: overrides}
			fmt.Println("Simulation mode: canonical history is not folded.")
		}

		resolved := d.Engine.ResolvePositions(episode, mode)

		for _, ch := range d.Engine.Catalog().Characters() {
			pos, ok := resolved[ch.ID]
			if !ok {
				continue
			}
			icon, err := d.Engine.ResolveEra(ch.ID, episode)
			if err != nil {
				return err
			}
			status := "alive"
			if pos.Dead {
				status = "dead"
			}
			fmt.Printf("%-16s %s %-20s (%6.1f, %6.1f)  %s\n", ch.ID, icon, ch.Name, pos.Coord.X, pos.Coord.Y, status)
		}

		if follow != "" {
			viewport := services.Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
			pan := d.Engine.CameraOffset(follow, episode, mode, viewport, zoom)
			if pan == nil {
				fmt.Printf("\nCamera: %s cannot be followed (not resolved)\n", follow)
			} else {
				fmt.Printf("\nCamera pan centering %s: (%.1f, %.1f)\n", follow, pan.X, pan.Y)
			}
		}

		reportSkipped(d.Engine.Skipped())
		return nil
	})
}
