package schema

const (
	AirportsTable   = "airports"
	RunwaysTable    = "runways"
	HeadingsView    = "runway_headings"
	AirportsCSVFile = "airports.csv"
	RunwaysCSVFile  = "runways.csv"
)

// Airports describes one row per airport.
func Airports() *Table {
	return &Table{
		Name: AirportsTable,
		Columns: []*Column{
			{Name: "id", Type: Integer, IsPK: true},
			{Name: "ident", Type: Text},
			{Name: "type", Type: Text},
			{Name: "name", Type: Text},
			{Name: "latitude_deg", Type: Real},
			{Name: "longitude_deg", Type: Real},
			{Name: "elevation_ft", Type: Integer},
			{Name: "iso_country", Type: Text},
			{Name: "iso_region", Type: Text},
			{Name: "municipality", Type: Text},
			{Name: "gps_code", Type: Text},
			{Name: "iata_code", Type: Text},
			{Name: "local_code", Type: Text},
		},
		Dependencies: []string{},
	}
}

// Runways describes one row per physical runway. Each runway has a low end (le_*)
// and a high end (he_*).
func Runways() *Table {
	return &Table{
		Name: RunwaysTable,
		Columns: []*Column{
			{Name: "id", Type: Integer, IsPK: true},
			{Name: "airport_ref", Type: Integer},
			{Name: "airport_ident", Type: Text},
			{Name: "length_ft", Type: Integer},
			{Name: "width_ft", Type: Integer},
			{Name: "surface", Type: Text},
			{Name: "lighted", Type: Boolean},
			{Name: "closed", Type: Boolean},
			{Name: "le_ident", Type: Text},
			{Name: "le_latitude_deg", Type: Real},
			{Name: "le_longitude_deg", Type: Real},
			{Name: "he_ident", Type: Text},
			{Name: "he_latitude_deg", Type: Real},
			{Name: "he_longitude_deg", Type: Real},
		},
		ForeignKeys: []*ForeignKey{
			{Column: "airport_ref", RefTable: AirportsTable, RefColumn: "id"},
		},
		Dependencies: []string{AirportsTable},
	}
}

// Tables returns the catalog in load order.
func Tables() []*Table {
	return SortTablesByFKCount([]*Table{Runways(), Airports()})
}

// Lookup returns the catalog table with the given name, or nil.
func Lookup(name string) *Table {
	for _, t := range Tables() {
		if t.Name == name {
			return t
		}
	}
	return nil
}
