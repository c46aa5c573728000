package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"airport-etl/internal/source"
)

func datasets(baseURL string) []source.Dataset {
	return []source.Dataset{
		{Table: "airports", File: "airports.csv", URL: baseURL + "/airports.csv"},
		{Table: "runways", File: "runways.csv", URL: baseURL + "/runways.csv"},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "airports.csv"), "id\n1\n")
	writeFile(t, filepath.Join(dir, "runways.csv"), "id\n1\n")

	r := source.NewResolver(source.Config{Dir: dir, Datasets: datasets("http://unused")}, nil)
	paths, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if paths["airports"] != filepath.Join(dir, "airports.csv") {
		t.Errorf("Unexpected airports path: %s", paths["airports"])
	}
	if paths["runways"] != filepath.Join(dir, "runways.csv") {
		t.Errorf("Unexpected runways path: %s", paths["runways"])
	}
}

func TestResolveLocalMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "airports.csv"), "id\n1\n")

	r := source.NewResolver(source.Config{Dir: dir, Datasets: datasets("http://unused")}, nil)
	_, err := r.Resolve(context.Background())

	var missing *source.MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFileError, got %v", err)
	}
	if missing.Path != filepath.Join(dir, "runways.csv") || missing.Dir != dir {
		t.Errorf("Unexpected error fields: %+v", missing)
	}
	want := filepath.Join(dir, "runways.csv") + " not found in " + dir + " directory"
	if missing.Error() != want {
		t.Errorf("Error() = %q, want %q", missing.Error(), want)
	}
}

func TestResolveDownload(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("id,ident\n1," + r.URL.Path + "\n"))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "cache")
	cfg := source.Config{Dir: dir, Download: true, Datasets: datasets(srv.URL)}

	paths, err := source.NewResolver(cfg, srv.Client()).Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	body, err := os.ReadFile(paths["runways"])
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "id,ident\n1,/runways.csv\n" {
		t.Errorf("Downloaded body not written verbatim: %q", body)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("Expected 2 requests, got %d", n)
	}

	// Second run: both files are cached.
	if _, err := source.NewResolver(cfg, srv.Client()).Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve (cached): %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("Cached files should not be fetched again, got %d requests", n)
	}
}

func TestResolveDownloadSkipsExistingEvenIfEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/airports.csv" {
			t.Errorf("airports.csv exists and should not be requested")
		}
		w.Write([]byte("id\n"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "airports.csv"), "")

	cfg := source.Config{Dir: dir, Download: true, Datasets: datasets(srv.URL)}
	if _, err := source.NewResolver(cfg, srv.Client()).Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}

func TestResolveDownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := source.Config{Dir: dir, Download: true, Datasets: datasets(srv.URL)}
	_, err := source.NewResolver(cfg, srv.Client()).Resolve(context.Background())

	var dlErr *source.DownloadError
	if !errors.As(err, &dlErr) {
		t.Fatalf("Expected DownloadError, got %v", err)
	}
	if dlErr.Status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", dlErr.Status)
	}
	if _, err := os.Stat(filepath.Join(dir, "airports.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("No file should be written for a failed download")
	}
}
