package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/curator/internal/config"
	"github.com/example/curator/internal/db"
	"github.com/example/curator/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the curator environment",
		Long: `Environment health check for curator.

Validates:
- Directory structure (~/.curator/)
- Database file and schema
- Config file
- Binary installation and PATH

Examples:
  curator doctor              # Run full health check
  curator doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDirectories(),
				checkDatabase(),
				checkConfig(),
				checkBinary(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'curator init' to set up the environment.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDirectories validates required directory structure
func checkDirectories() CheckResult {
	dir, err := config.Dir()
	if err != nil {
		return CheckResult{Name: "Directories", Status: "✗", Details: "  Cannot get home directory"}
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Directories",
			Status:  "✗",
			Details: "  Missing: ~/.curator/",
		}
	}

	return CheckResult{Name: "Directories", Status: "✓"}
}

// checkDatabase validates the database file exists and opens cleanly
func checkDatabase() CheckResult {
	dbPath, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  Cannot resolve database path"}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found\n  Run: curator init", dbPath),
		}
	}

	database, err := db.GetDB()
	if err != nil {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: "  " + err.Error(),
		}
	}

	var entries int
	if err := database.QueryRow("SELECT COUNT(*) FROM mods").Scan(&entries); err != nil {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: "  Schema incomplete: " + err.Error(),
		}
	}

	return CheckResult{Name: "Database", Status: "✓", Details: fmt.Sprintf("  %d entries", entries)}
}

// checkConfig validates config.json is present and parseable
func checkConfig() CheckResult {
	dir, err := config.Dir()
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  Cannot get home directory"}
	}

	if _, err := os.Stat(filepath.Join(dir, "config.json")); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Config",
			Status:  "⚠",
			Details: "  ~/.curator/config.json not found\n  Run: curator init",
		}
	}

	if _, err := config.LoadConfig(dir); err != nil {
		return CheckResult{
			Name:    "Config",
			Status:  "✗",
			Details: "  " + err.Error(),
		}
	}

	return CheckResult{Name: "Config", Status: "✓"}
}

// checkBinary validates curator binary installation
func checkBinary() CheckResult {
	binPath, err := exec.LookPath("curator")
	if err != nil {
		return CheckResult{
			Name:    "Binary",
			Status:  "⚠",
			Details: "  'curator' not found in PATH\n  Run: go install ./cmd/curator",
		}
	}

	return CheckResult{
		Name:    "Binary",
		Status:  "✓",
		Details: fmt.Sprintf("  %s (%s)", binPath, strings.TrimSpace(version.String())),
	}
}
