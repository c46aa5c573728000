package cmd

import (
	"path/filepath"
	"testing"

	"airport-etl/internal/schema"

	"github.com/spf13/viper"
)

func setDatabases(t *testing.T, dbs []map[string]interface{}) {
	t.Helper()
	viper.Set("databases", dbs)
	t.Cleanup(func() { viper.Set("databases", nil) })
}

func TestGetActiveDBConfig(t *testing.T) {
	setDatabases(t, []map[string]interface{}{
		{"name": "local", "driver": "sqlite", "dsn": "airports.db", "active": false},
		{"name": "warehouse", "driver": "postgres", "dsn": "postgres://etl@localhost/airports", "active": true},
	})

	config, err := GetActiveDBConfig()
	if err != nil {
		t.Fatalf("GetActiveDBConfig: %v", err)
	}
	if config.Name != "warehouse" || config.Driver != "postgres" {
		t.Errorf("Unexpected config: %+v", config)
	}
}

func TestGetActiveDBConfigErrors(t *testing.T) {
	setDatabases(t, []map[string]interface{}{
		{"name": "a", "driver": "sqlite", "dsn": "a.db", "active": false},
	})
	if _, err := GetActiveDBConfig(); err == nil {
		t.Error("Expected error when no database is active")
	}

	setDatabases(t, []map[string]interface{}{
		{"name": "a", "driver": "sqlite", "dsn": "a.db", "active": true},
		{"name": "b", "driver": "sqlite", "dsn": "b.db", "active": true},
	})
	if _, err := GetActiveDBConfig(); err == nil {
		t.Error("Expected error when several databases are active")
	}
}

func TestSourceConfigDefaults(t *testing.T) {
	cfg := sourceConfig()
	if cfg.Dir != "source-data" || cfg.Download {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if len(cfg.Datasets) != 2 || cfg.Datasets[0].Table != schema.AirportsTable {
		t.Fatalf("Unexpected datasets: %+v", cfg.Datasets)
	}
	if cfg.Datasets[1].URL != "https://davidmegginson.github.io/ourairports-data/runways.csv" {
		t.Errorf("Unexpected runways URL: %s", cfg.Datasets[1].URL)
	}
}

func TestOpenStoreReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.db")
	config := &DBConfig{Name: "test", Driver: "sqlite", DSN: path, Active: true}

	db, _, err := openStore(config, false)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if _, err := db.Exec("CREATE TABLE leftover (id INTEGER)"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, _, err = openStore(config, true)
	if err != nil {
		t.Fatalf("openStore with reset: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE name = 'leftover'").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Error("Reset should start from an empty store file")
	}
}

func TestDriverName(t *testing.T) {
	cases := map[string]string{"": "sqlite", "sqlite3": "sqlite", "sqlite": "sqlite", "pgx": "pgx", "oracle": "oracle"}
	for in, want := range cases {
		if got := driverName(in); got != want {
			t.Errorf("driverName(%q) = %q, want %q", in, got, want)
		}
	}
}
