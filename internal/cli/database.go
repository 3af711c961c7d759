package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/database"
)

var seedSkipMigrate bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(db *gorm.DB) error {
			if err := database.RunMigrations(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the starter catalog into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(db *gorm.DB) error {
			if !seedSkipMigrate {
				if err := database.RunMigrations(db); err != nil {
					return err
				}
			}
			res, err := database.Seed(cmd.Context(), db)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Traditional foods: %d\n", res.Foods)
			fmt.Fprintf(out, "Daily tips: %d\n", res.Tips)
			fmt.Fprintf(out, "Diet plans: %d\n", res.DietPlans)
			fmt.Fprintf(out, "Products: %d\n", res.Products)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd)
	seedCmd.Flags().BoolVar(&seedSkipMigrate, "skip-migrate", false, "Do not migrate before seeding")
}
