package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"scriptdex/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new scriptdex project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	return cmd
}

func runInit(projectName string) error {
	configPath := config.DefaultFile
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	configContents := fmt.Sprintf("project: %s\nversion: 1\n\ndocs:\n  dir: ./docs\n\ndata:\n  dir: ./data\n\nlog:\n  level: info\n", projectName)
	if err := os.WriteFile(configPath, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	if err := os.MkdirAll(filepath.Join("docs", "data_types"), 0o755); err != nil {
		return fmt.Errorf("creating docs directory: %w", err)
	}
	if err := os.MkdirAll("data", 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	return nil
}
