// Package source makes the airport and runway CSV files available on disk,
// either by checking pre-staged copies or by downloading missing ones.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

const (
	DefaultDir         = "source-data"
	DefaultAirportsURL = "https://davidmegginson.github.io/ourairports-data/airports.csv"
	DefaultRunwaysURL  = "https://davidmegginson.github.io/ourairports-data/runways.csv"
)

// Dataset is one CSV file feeding one table.
type Dataset struct {
	Table string
	File  string // file name inside Config.Dir
	URL   string
}

type Config struct {
	Dir      string
	Download bool
	Datasets []Dataset
}

// MissingFileError is returned in local mode when a dataset file is absent.
type MissingFileError struct {
	Path string
	Dir  string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s not found in %s directory", e.Path, e.Dir)
}

// DownloadError is returned when fetching a dataset fails.
type DownloadError struct {
	URL    string
	Status int // HTTP status, 0 when the request itself failed
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("download %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Resolver locates or fetches the datasets described by a Config.
type Resolver struct {
	cfg    Config
	client *http.Client
}

// NewResolver returns a Resolver. A nil client means http.DefaultClient.
func NewResolver(cfg Config, client *http.Client) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	return &Resolver{cfg: cfg, client: client}
}

// Path returns where the dataset's file is expected.
func (r *Resolver) Path(ds Dataset) string {
	return filepath.Join(r.cfg.Dir, ds.File)
}

// Resolve returns the file path of every dataset keyed by table name. In local
// mode it stops at the first missing file; in download mode it fetches every
// file that does not exist yet. Existing files are never re-validated.
func (r *Resolver) Resolve(ctx context.Context) (map[string]string, error) {
	paths := make(map[string]string, len(r.cfg.Datasets))
	for _, ds := range r.cfg.Datasets {
		path := r.Path(ds)
		exists, err := fileExists(path)
		if err != nil {
			return nil, err
		}

		switch {
		case exists && r.cfg.Download:
			log.Printf("%s already exists, skipping download", path)
		case exists:
			log.Printf("Using %s data from %s", ds.Table, path)
		case r.cfg.Download:
			if err := r.fetch(ctx, ds.URL, path); err != nil {
				return nil, err
			}
		default:
			return nil, &MissingFileError{Path: path, Dir: r.cfg.Dir}
		}
		paths[ds.Table] = path
	}
	return paths, nil
}

// fetch writes the response body verbatim to path. A body that fails halfway
// leaves the partial file behind.
func (r *Resolver) fetch(ctx context.Context, url, path string) error {
	log.Printf("Downloading %s -> %s", url, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DownloadError{URL: url, Status: resp.StatusCode}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create source dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}

	log.Printf("Downloaded %s (%d bytes)", path, n)
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}
