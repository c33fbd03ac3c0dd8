package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/smile-plzz/chronicle-core/internal/application/handlers"
	"github.com/smile-plzz/chronicle-core/internal/domain/services"
)

func newExportCmd() *cobra.Command {
	var (
		episode int
		format  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the chronicle report",
		Long:  "Writes the state of the realm at an episode as json, csv, markdown, or html.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, episode, format, output)
		},
	}

	cmd.Flags().IntVarP(&episode, "episode", "e", 0, "Global episode index")
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Output format: json, csv, markdown, html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

// reportRow is one character's line in the exported report.
type reportRow struct {
	CharacterID string  `json:"character_id"`
	Name        string  `json:"name"`
	House       string  `json:"house"`
	Icon        string  `json:"icon"`
	LocationID  string  `json:"location_id,omitempty"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	Dead        bool    `json:"dead"`
	Distance    float64 `json:"distance"`
}

// report is the full exported document.
type report struct {
	Season  int         `json:"season"`
	Number  int         `json:"number"`
	Title   string      `json:"title"`
	Episode int         `json:"episode"`
	Alive   int         `json:"alive"`
	Dead    int         `json:"dead"`
	Cast    []reportRow `json:"cast"`
	Skipped int         `json:"skipped_records,omitempty"`
}

func runExport(cmd *cobra.Command, episode int, format, output string) error {
	if !isValidFormat(format) {
		return fmt.Errorf("unknown format %q (expected one of %v)", format, validFormats)
	}

	return withEngine(cmd.Context(), func(d *Deps) error {
		rep, err := buildReport(d.Engine, episode)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		switch format {
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		case "csv":
			return writeCSV(w, rep)
		case "markdown":
			_, err := io.WriteString(w, renderMarkdown(rep))
			return err
		case "html":
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(renderMarkdown(rep)), &buf); err != nil {
				return fmt.Errorf("rendering html: %w", err)
			}
			_, err := buf.WriteTo(w)
			return err
		}
		return nil
	})
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}

func buildReport(engine *handlers.EngineHandler, episode int) (*report, error) {
	catalog := engine.Catalog()
	index := catalog.ClampIndex(episode)
	ep := catalog.Episode(index)

	positions := engine.ResolvePositions(index, services.Canonical{})
	stats := engine.AggregateStats(index)

	rep := &report{
		Season:  ep.Season,
		Number:  ep.Number,
		Title:   ep.Title,
		Episode: index,
		Alive:   stats.Alive,
		Dead:    stats.Dead,
		Skipped: len(engine.Skipped()),
	}

	for _, ch := range catalog.Characters() {
		icon, err := engine.ResolveEra(ch.ID, index)
		if err != nil {
			return nil, fmt.Errorf("resolving era for %s: %w", ch.ID, err)
		}

		row := reportRow{
			CharacterID: ch.ID,
			Name:        ch.Name,
			House:       ch.House,
			Icon:        icon,
			Dead:        engine.CharacterDead(ch.ID, index),
			Distance:    engine.CharacterDistance(ch.ID, index),
		}
		if pos, ok := positions[ch.ID]; ok {
			row.X = pos.Coord.X
			row.Y = pos.Coord.Y
		}
		rep.Cast = append(rep.Cast, row)
	}

	return rep, nil
}

func writeCSV(w io.Writer, rep *report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"character_id", "name", "house", "icon", "x", "y", "dead", "distance"}); err != nil {
		return err
	}
	for _, row := range rep.Cast {
		record := []string{
			row.CharacterID,
			row.Name,
			row.House,
			row.Icon,
			strconv.FormatFloat(row.X, 'f', 1, 64),
			strconv.FormatFloat(row.Y, 'f', 1, 64),
			strconv.FormatBool(row.Dead),
			strconv.FormatFloat(row.Distance, 'f', 1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderMarkdown(rep *report) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Chronicle Report: S%dE%d %s\n\n", rep.Season, rep.Number, rep.Title)
	fmt.Fprintf(&b, "Episode index %d. **%d** alive, **%d** dead.\n\n", rep.Episode, rep.Alive, rep.Dead)
	b.WriteString("| Character | House | Status | Distance |\n")
	b.WriteString("|-----------|-------|--------|----------|\n")
	for _, row := range rep.Cast {
		status := "Alive"
		if row.Dead {
			status = "Dead"
		}
		fmt.Fprintf(&b, "| %s %s | %s | %s | %.1f |\n", row.Icon, row.Name, row.House, status, row.Distance)
	}
	if rep.Skipped > 0 {
		fmt.Fprintf(&b, "\n_%d record(s) skipped for unknown references._\n", rep.Skipped)
	}
	return b.String()
}
