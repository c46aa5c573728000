package cmd

import (
	"fmt"

	"airport-etl/internal/sample"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write synthetic airports.csv and runways.csv into the source directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := viper.GetString("sources.dir")
		opts := sample.Options{
			Airports: viper.GetInt("sample.airports"),
			Seed:     viper.GetInt64("sample.seed"),
		}
		if opts.Airports <= 0 {
			return fmt.Errorf("sample.airports must be positive, got %d", opts.Airports)
		}

		counts, err := sample.WriteFiles(dir, opts)
		if err != nil {
			return err
		}
		fmt.Printf("🧪 Wrote %d airports and %d runways to %s (%d heading rows expected)\n",
			counts.Airports, counts.Runways, dir, counts.HeadingEnds)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().Int("airports", 50, "Number of airports to generate")
	sampleCmd.Flags().Int64("seed", 1, "Random seed")

	viper.BindPFlag("sample.airports", sampleCmd.Flags().Lookup("airports"))
	viper.BindPFlag("sample.seed", sampleCmd.Flags().Lookup("seed"))
	viper.SetDefault("sample.airports", 50)
	viper.SetDefault("sample.seed", 1)
}
