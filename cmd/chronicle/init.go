package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smile-plzz/chronicle-core/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a chronicle in the current directory",
		Long:  "Creates the .chronicle directory with a default configuration file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			if config.Exists(cwd) {
				return fmt.Errorf("chronicle already initialized: %s", config.ConfigFilePath(cwd))
			}

			if err := config.WriteDefault(cwd); err != nil {
				return err
			}

			fmt.Printf("Initialized chronicle configuration in %s\n", config.ConfigDir(cwd))
			fmt.Println("Next: import a catalog with 'chronicle import <file>'")
			return nil
		},
	}
}
