package cmd

import (
	"fmt"

	"airport-etl/internal/engine"
	"airport-etl/internal/schema"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Count loaded rows and check the runway_headings view",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveDBConfig()
		if err != nil {
			return err
		}
		db, d, err := openStore(config, false)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Printf("🦅 Connected to %s (%s)\n", config.Name, config.Driver)

		report, err := engine.Verify(cmd.Context(), db, d, schema.Tables())
		if err != nil {
			return err
		}
		printVerifyReport(report)

		if report.ViewExists && report.ViewStatus != "OK" {
			return fmt.Errorf("%s does not match runway identifiers", schema.HeadingsView)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}
