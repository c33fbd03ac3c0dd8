package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smile-plzz/chronicle-core/internal/domain/services"
)

func newPlayCmd() *cobra.Command {
	var (
		from        int
		season      int
		spoilerFree bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Autoplay through the chronology",
		Long:  "Advances the cursor one episode per tick, printing each episode's headline, until the end of the chronology or interrupt.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, from, season, spoilerFree)
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "Global episode index to start at")
	cmd.Flags().IntVarP(&season, "season", "s", 0, "Restrict playback to one season (0 = all)")
	cmd.Flags().BoolVar(&spoilerFree, "spoiler-free", false, "Confirm before jumping past the furthest episode seen")

	return cmd
}

func runPlay(cmd *cobra.Command, from, season int, spoilerFree bool) error {
	return withEngine(cmd.Context(), func(d *Deps) error {
		timeline := d.Engine.Timeline()
		timeline.SetSpoilerFree(spoilerFree)
		if season != 0 {
			timeline.FilterSeason(season)
		}

		if timeline.NeedsSpoilerConfirm(from) && !confirmSpoiler(from) {
			fmt.Println("Staying put.")
			return nil
		}
		timeline.SetCursor(from)

		selectable := make(map[int]bool)
		for _, i := range timeline.SelectableIndices() {
			selectable[i] = true
		}
		if len(selectable) == 0 {
			return fmt.Errorf("no episodes in season %d", season)
		}

		// The starting cursor may sit outside the filtered season.
		if !selectable[timeline.Cursor()] && !advanceSelectable(timeline, selectable) {
			fmt.Println("Nothing left to play in this season.")
			return nil
		}

		printEpisode(d, timeline.Cursor())

		ticker := time.NewTicker(time.Duration(d.Config.Playback.Interval))
		defer ticker.Stop()

		ctx := cmd.Context()
		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nPlayback stopped.")
				return nil
			case <-ticker.C:
				if !advanceSelectable(timeline, selectable) {
					fmt.Println("\nEnd of the chronology.")
					return nil
				}
				printEpisode(d, timeline.Cursor())
			}
		}
	})
}

// advanceSelectable advances the cursor until it lands on an episode
// the season filter offers, or the chronology ends.
func advanceSelectable(timeline *services.Timeline, selectable map[int]bool) bool {
	for timeline.Advance() {
		if selectable[timeline.Cursor()] {
			return true
		}
	}
	return false
}

// confirmSpoiler asks the viewer before jumping past the high-water
// mark. Declining leaves the cursor where it was.
func confirmSpoiler(index int) bool {
	fmt.Printf("Episode %d is beyond the furthest point you have watched. Continue? [y/N] ", index)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printEpisode(d *Deps, index int) {
	ep := d.Engine.Catalog().Episode(index)
	if ep == nil {
		return
	}
	stats := d.Engine.AggregateStats(index)
	fmt.Printf("[%3d] S%dE%d %-40s alive %d / dead %d\n",
		index, ep.Season, ep.Number, ep.Title, stats.Alive, stats.Dead)
}
