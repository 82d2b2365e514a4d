package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/curator/internal/config"
	"github.com/example/curator/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the curator database",
		Long:  `Initialize the curator database at ~/.curator/curator.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing curator database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			fmt.Println("✓ Config file created at ~/.curator/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  curator import modlist.txt")
			fmt.Println("  curator status")

			return nil
		},
	}
}

// initConfig writes the default config.json unless one already exists.
func initConfig() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}

	if _, err := config.LoadConfig(dir); err == nil {
		return nil // already exists, leave it alone
	}

	return config.SaveConfig(dir, config.DefaultConfig())
}
