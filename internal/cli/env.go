package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartdiet-sl/smartdiet/backend/config"
)

// lookupEnv resolves keys for check-env. Nil means environment variables
// then Docker secrets, as LoadConfig does.
var lookupEnv func(string) string

var checkEnvCmd = &cobra.Command{
	Use:   "check-env",
	Short: "Report which configuration keys are set",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := config.GetEnvironment()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
		fmt.Fprintf(w, "Environment: %s\n\n", env)
		fmt.Fprintln(w, "KEY\tREQUIRED\tSTATUS\tVALUE")

		var missing []string
		for _, k := range config.Report(env, lookupEnv) {
			status := "set"
			if !k.Set {
				status = "missing"
				if k.Required {
					missing = append(missing, k.Key)
				}
			}
			fmt.Fprintf(w, "%s\t%t\t%s\t%s\n", k.Key, k.Required, status, k.Value)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing required keys: %v", missing)
		}
		return nil
	},
}

var bucketPolicyCmd = &cobra.Command{
	Use:   "bucket-policy",
	Short: "Allow public reads on the upload bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s3cfg, err := config.NewS3Config(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if err := s3cfg.SetupBucketPolicy(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Public read policy applied to %s\n", s3cfg.BucketName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkEnvCmd, bucketPolicyCmd)
}
