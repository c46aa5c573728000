package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"airport-etl/internal/engine"
	"airport-etl/internal/schema"
	"airport-etl/internal/source"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Import airports.csv and runways.csv into the store",
	Long: `Import airports.csv and runways.csv into the store.

By default both files must already be in the source directory and the store is
recreated from scratch. With --download missing files are fetched first; with
--reset=false existing tables are kept and rows are appended.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		config, err := resolveDBConfig()
		if err != nil {
			return err
		}

		// 1. Sources
		paths, err := source.NewResolver(sourceConfig(), nil).Resolve(ctx)
		var missing *source.MissingFileError
		if errors.As(err, &missing) {
			// Nothing has been touched yet; stop quietly.
			fmt.Printf("Error: %v\n", missing)
			return nil
		}
		if err != nil {
			return err
		}

		// 2. Store
		reset := viper.GetBool("settings.reset")
		db, d, err := openStore(config, reset)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Printf("🦅 Connected to %s (%s)\n", config.Name, config.Driver)
		log.Printf("Using Dialect: %s\n", d.Name())

		opts := engine.Options{
			Reset:      reset,
			CreateView: viper.GetBool("settings.create_view"),
			Sources:    paths,
		}
		start := time.Now()

		// 3. Load
		uiprogress.Start()
		results, err := engine.Run(ctx, db, d, schema.Tables(), opts, progressBars())
		uiprogress.Stop()
		if err != nil {
			return err
		}

		// 4. Report
		printLoadReport(results)
		log.Printf("Import Done! Time Elapsed: %s", time.Since(start))
		fmt.Printf("✅ Import completed. Data saved to '%s'.\n", config.DSN)
		return nil
	},
}

// progressBars returns an engine.ProgressFunc drawing one bar per table.
func progressBars() engine.ProgressFunc {
	bars := make(map[string]*uiprogress.Bar)
	return func(table string, done, total int) {
		if total == 0 {
			return
		}
		bar, ok := bars[table]
		if !ok {
			bar = uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return fmt.Sprintf("%-10s", table)
			})
			bars[table] = bar
		}
		if done > 0 {
			bar.Incr()
		}
	}
}

func init() {
	RootCmd.AddCommand(loadCmd)

	// CLI Flags
	loadCmd.Flags().Bool("download", false, "Download source files that are not present yet")
	loadCmd.Flags().Bool("reset", true, "Recreate the store before loading (false keeps existing tables)")
	loadCmd.Flags().Bool("create-view", true, "Create the runway_headings view")

	viper.BindPFlag("sources.download", loadCmd.Flags().Lookup("download"))
	viper.BindPFlag("settings.reset", loadCmd.Flags().Lookup("reset"))
	viper.BindPFlag("settings.create_view", loadCmd.Flags().Lookup("create-view"))
}
