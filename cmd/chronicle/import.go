package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smile-plzz/chronicle-core/internal/application/handlers"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/catalogdb/sqlite"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/config"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/parsers"
)

func newImportCmd() *cobra.Command {
	var (
		format string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a reference catalog",
		Long: "Imports locations, characters, and episodes from a JSON catalog " +
			"or a CSV movement log into the catalog store.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], format, dryRun)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format (json, csv); inferred from extension when omitted")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without saving")

	return cmd
}

func runImport(cmd *cobra.Command, filename, format string, dryRun bool) error {
	var parser parsers.Parser
	if format != "" {
		parser = parsers.ForFormat(format)
	} else {
		parser = parsers.ForFile(filename)
	}
	if parser == nil {
		return fmt.Errorf("unsupported format (supported: json, csv)")
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	raw, err := parser.Parse(file)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	return withStore(cmd.Context(), func(cfg *config.Config, store *sqlite.Store) error {
		handler := handlers.NewImportHandler(store)
		result, err := handler.Handle(cmd.Context(), raw, handlers.ImportOptions{DryRun: dryRun})
		if err != nil {
			return fmt.Errorf("importing catalog: %w", err)
		}

		if dryRun {
			fmt.Println("Dry run; nothing saved.")
		} else {
			fmt.Printf("Saved to %s\n", store.Path())
		}
		fmt.Printf("Locations:  %d\n", result.Locations)
		fmt.Printf("Characters: %d\n", result.Characters)
		fmt.Printf("Episodes:   %d\n", result.Episodes)

		if len(result.Errors) > 0 {
			fmt.Printf("\n%d record(s) skipped:\n", len(result.Errors))
			for _, importErr := range result.Errors {
				fmt.Printf("  %s\n", importErr)
			}
		}
		return nil
	})
}
