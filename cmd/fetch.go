package cmd

import (
	"fmt"

	"airport-etl/internal/schema"
	"airport-etl/internal/source"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the source CSV files that are not cached yet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := sourceConfig()
		cfg.Download = true

		paths, err := source.NewResolver(cfg, nil).Resolve(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range schema.Tables() {
			fmt.Printf("📄 %-10s %s\n", t.Name, paths[t.Name])
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fetchCmd)
}
