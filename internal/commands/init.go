package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brokerbooks-dev/brokerbooks/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string
	var baseURL string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new brokerbooks project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, baseURL)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&baseURL, "api-url", "http://localhost:8000/api", "backend API base URL")

	return cmd
}

func runInit(dir, name, baseURL string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default(name, baseURL)
	if err := config.Save(filepath.Join(dir, "brokerbooks.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// .env template for the API token; never committed.
	envContent := config.TokenEnv + "=\n"
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		if err := os.WriteFile(envPath, []byte(envContent), 0o600); err != nil {
			return fmt.Errorf("writing .env: %w", err)
		}
	}

	gitignore := ".env\n.brokerbooks-cache/\nauditlog.csv\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Initialized brokerbooks project at %s\n", dir)
	return nil
}
