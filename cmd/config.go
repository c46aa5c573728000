package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"airport-etl/internal/dialect"
	"airport-etl/internal/schema"
	"airport-etl/internal/source"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// resolveDBConfig picks the store to use: --dsn/--driver flags first, then the
// active entry of the databases list, then database.driver/database.dsn.
func resolveDBConfig() (*DBConfig, error) {
	flags := RootCmd.PersistentFlags()
	if !flags.Changed("dsn") && !flags.Changed("driver") && viper.IsSet("databases") {
		return GetActiveDBConfig()
	}
	return &DBConfig{
		Name:   "default",
		Driver: viper.GetString("database.driver"),
		DSN:    viper.GetString("database.dsn"),
		Active: true,
	}, nil
}

// sourceConfig builds the dataset list from sources.* keys.
func sourceConfig() source.Config {
	airportsURL := viper.GetString("sources.airports_url")
	if airportsURL == "" {
		airportsURL = source.DefaultAirportsURL
	}
	runwaysURL := viper.GetString("sources.runways_url")
	if runwaysURL == "" {
		runwaysURL = source.DefaultRunwaysURL
	}

	return source.Config{
		Dir:      viper.GetString("sources.dir"),
		Download: viper.GetBool("sources.download"),
		Datasets: []source.Dataset{
			{Table: schema.AirportsTable, File: schema.AirportsCSVFile, URL: airportsURL},
			{Table: schema.RunwaysTable, File: schema.RunwaysCSVFile, URL: runwaysURL},
		},
	}
}

// openStore connects to the configured store. With reset set, a file-backed
// store is deleted first so the run starts from an empty database.
func openStore(config *DBConfig, reset bool) (*sql.DB, dialect.Dialect, error) {
	d := dialect.GetDialect(config.Driver)

	if fs, ok := d.(dialect.FileStore); ok && reset {
		if path := fs.StorePath(config.DSN); path != "" {
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("Removing existing database file: %s\n", path)
				if err := os.Remove(path); err != nil {
					return nil, nil, fmt.Errorf("failed to remove %s: %w", path, err)
				}
			} else if !errors.Is(err, os.ErrNotExist) {
				return nil, nil, err
			}
		}
	}

	db, err := sql.Open(driverName(config.Driver), config.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	if _, ok := d.(dialect.FileStore); ok {
		// one writer, and keeps :memory: on a single connection
		db.SetMaxOpenConns(1)
	}
	return db, d, nil
}

// driverName maps a configured driver to the name registered with database/sql.
func driverName(configured string) string {
	if configured == "" || configured == "sqlite3" {
		return "sqlite"
	}
	return configured
}
