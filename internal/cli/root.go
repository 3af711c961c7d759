// Package cli implements smartdietctl, the operator command line for the
// Smart Diet backend.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/config"
	"github.com/smartdiet-sl/smartdiet/backend/internal/database"
)

var rootCmd = &cobra.Command{
	Use:           "smartdietctl",
	Short:         "smartdietctl manages the Smart Diet backend",
	Long:          "smartdietctl runs database migrations, seeds the starter catalog and checks the server configuration.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig is replaced in tests.
var loadConfig = config.LoadConfig

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withDB opens the configured database, runs fn and closes it.
func withDB(cmd *cobra.Command, fn func(db *gorm.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	config.ConfigureLogging(cfg)

	db, err := database.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(db)
}
