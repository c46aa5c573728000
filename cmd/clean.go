package cmd

import (
	"fmt"
	"log"

	"airport-etl/internal/engine"
	"airport-etl/internal/schema"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the runway_headings view and the airports/runways tables",
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

		if err := engine.Drop(cmd.Context(), db, d, schema.Tables()); err != nil {
			return err
		}
		log.Println("Database Cleaned Successfully!")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)
}
