package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	dsn     string
	driver  string
)

var RootCmd = &cobra.Command{
	Use:   "airport-etl",
	Short: "Load OurAirports airport and runway data into a SQL store",
	Long: `
    _   ___ ___ ___  ___  ___ _____   ___ _____ _
   /_\ |_ _| _ \ _ \/ _ \| _ \_   _| | __|_   _| |
  / _ \ | ||   /  _/ (_) |   / | |   | _|  | | | |__
 /_/ \_\___|_|_\_|  \___/|_|_\ |_|   |___| |_| |____|

AIRPORT ETL ✈️  - airports.csv + runways.csv -> tables + runway_headings view
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./airport-etl.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")
	RootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Database driver: sqlite, mysql, postgres, pgx, sqlserver, oracle")

	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))

	// Set defaults for Viper (fallback if no config/flag)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "airports.db")
	viper.SetDefault("sources.dir", "source-data")
	viper.SetDefault("sources.download", false)
	viper.SetDefault("settings.reset", true)
	viper.SetDefault("settings.create_view", true)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("airport-etl")
		viper.SetConfigType("yaml")
	}

	// AIRPORT_ETL_DATABASE_DSN overrides database.dsn, and so on.
	viper.SetEnvPrefix("airport_etl")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
