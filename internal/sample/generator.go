// Package sample writes synthetic airports.csv and runways.csv files in the
// OurAirports layout, for demos and tests.
package sample

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"airport-etl/internal/heading"
	"airport-etl/internal/schema"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	airportTypes = []string{"small_airport", "medium_airport", "large_airport", "heliport", "seaplane_base", "closed"}
	nameSuffixes = []string{"International Airport", "Regional Airport", "Airfield", "Airstrip", "Field"}
	surfaces     = []string{"ASP", "CON", "GRS", "TURF", "GVL", "DIRT", ""}
	sides        = []string{"", "L", "R", "C"}
)

var opposite = map[string]string{"": "", "L": "R", "R": "L", "C": "C"}

type Options struct {
	Airports int
	Seed     int64
}

// Counts describes what was generated.
type Counts struct {
	Airports int
	Runways  int
	// HeadingEnds is the number of runway ends the heading view will list.
	HeadingEnds int
}

// WriteFiles generates both datasets into dir using the standard file names.
func WriteFiles(dir string, opts Options) (Counts, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Counts{}, fmt.Errorf("create %s: %w", dir, err)
	}
	af, err := os.Create(filepath.Join(dir, schema.AirportsCSVFile))
	if err != nil {
		return Counts{}, err
	}
	defer af.Close()
	rf, err := os.Create(filepath.Join(dir, schema.RunwaysCSVFile))
	if err != nil {
		return Counts{}, err
	}
	defer rf.Close()

	counts, err := Generate(af, rf, opts)
	if err != nil {
		return counts, err
	}
	if err := af.Close(); err != nil {
		return counts, err
	}
	return counts, rf.Close()
}

// Generate writes opts.Airports airports, each with up to three runways. The
// same seed always produces the same files.
func Generate(airports, runways io.Writer, opts Options) (Counts, error) {
	f := gofakeit.New(opts.Seed)
	aw := csv.NewWriter(airports)
	rw := csv.NewWriter(runways)

	if err := aw.Write(schema.Airports().ColumnNames()); err != nil {
		return Counts{}, err
	}
	if err := rw.Write(schema.Runways().ColumnNames()); err != nil {
		return Counts{}, err
	}

	var counts Counts
	for i := 1; i <= opts.Airports; i++ {
		a := airportRecord(f, i)
		if err := aw.Write(a); err != nil {
			return counts, err
		}
		counts.Airports++

		ident := a[1]
		n := f.Number(0, 3)
		start := f.Number(0, 17)
		for k := 0; k < n; k++ {
			counts.Runways++
			r := runwayRecord(f, counts.Runways, i, ident, (start+k*5)%18+1)
			if err := rw.Write(r); err != nil {
				return counts, err
			}
			counts.HeadingEnds += len(heading.Ends(ident, r[8], r[11]))
		}
	}

	aw.Flush()
	rw.Flush()
	if err := aw.Error(); err != nil {
		return counts, err
	}
	return counts, rw.Error()
}

// airportRecord follows the column order of schema.Airports.
func airportRecord(f *gofakeit.Faker, id int) []string {
	ident := fmt.Sprintf("%s%03d", strings.ToUpper(f.LetterN(1)), id)
	country := f.CountryAbr()

	var elevation, iata string
	if f.Number(0, 9) > 0 {
		elevation = strconv.Itoa(f.Number(-200, 14000))
	}
	if f.Bool() {
		iata = strings.ToUpper(f.LetterN(3))
	}

	return []string{
		strconv.Itoa(id),
		ident,
		f.RandomString(airportTypes),
		f.City() + " " + f.RandomString(nameSuffixes),
		formatDeg(f.Latitude()),
		formatDeg(f.Longitude()),
		elevation,
		country,
		country + "-" + strings.ToUpper(f.LetterN(2)),
		f.City(),
		ident,
		iata,
		"",
	}
}

// runwayRecord follows the column order of schema.Runways. Most runways get a
// numbered pair of ends (09L/27R); some are helipads or unnamed strips whose
// ends the heading view skips.
func runwayRecord(f *gofakeit.Faker, id, airportRef int, airportIdent string, n int) []string {
	var le, he string
	switch f.Number(0, 9) {
	case 0:
		le = "H1"
	case 1:
		// unnamed strip
	default:
		side := f.RandomString(sides)
		le = fmt.Sprintf("%02d%s", n, side)
		he = fmt.Sprintf("%02d%s", n+18, opposite[side])
	}

	var width string
	if f.Bool() {
		width = strconv.Itoa(f.Number(20, 200))
	}

	return []string{
		strconv.Itoa(id),
		strconv.Itoa(airportRef),
		airportIdent,
		strconv.Itoa(f.Number(800, 13000)),
		width,
		f.RandomString(surfaces),
		flag(f.Bool()),
		flag(f.Number(0, 9) == 0),
		le,
		formatDeg(f.Latitude()),
		formatDeg(f.Longitude()),
		he,
		"",
		"",
	}
}

func formatDeg(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
