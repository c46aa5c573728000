// Package heading decodes runway end identifiers into magnetic headings.
//
// A runway end identifier starts with the heading rounded to tens of degrees
// ("09", "27L", "18C"). Decode applies the same rule as the runway_headings view,
// so the view can be checked against the base table.
package heading

// Heading is the decoded heading of one runway end. Valid is false when the
// identifier is listed in the view but carries no usable heading ("00").
type Heading struct {
	Degrees int
	Valid   bool
}

// Decode returns the heading for ident and whether the end appears in the view
// at all. Ends with an empty identifier or without two leading digits are not
// listed.
func Decode(ident string) (Heading, bool) {
	if len(ident) < 2 || !isDigit(ident[0]) || !isDigit(ident[1]) {
		return Heading{}, false
	}
	n := int(ident[0]-'0')*10 + int(ident[1]-'0')
	if n == 0 {
		return Heading{}, true
	}
	return Heading{Degrees: n * 10, Valid: true}, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// End is one runway end as it appears in the view.
type End struct {
	Airport string
	Runway  string
	Heading Heading
}

// Ends returns the listed ends of a runway, low end first.
func Ends(airport, leIdent, heIdent string) []End {
	var ends []End
	for _, ident := range []string{leIdent, heIdent} {
		if h, ok := Decode(ident); ok {
			ends = append(ends, End{Airport: airport, Runway: ident, Heading: h})
		}
	}
	return ends
}
