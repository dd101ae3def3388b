package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/c360studio/semview/config"
)

func configInitCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write default configuration files",
		Long: `Init creates the user config (~/.config/semview/config.yaml) with
defaults if it does not exist. With --project it also writes a
semview.yaml into the given directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(slog.Default())
			if err := loader.EnsureUserConfig(); err != nil {
				return fmt.Errorf("create user config: %w", err)
			}

			if projectPath != "" {
				path := filepath.Join(projectPath, config.ProjectConfigFile)
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("project config already exists: %s", path)
				}
				if err := config.DefaultConfig().SaveToFile(path); err != nil {
					return fmt.Errorf("create project config: %w", err)
				}
				fmt.Printf("Created %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "Also write a project config into this directory")

	return cmd
}
