package pggeom

import (
	"regexp"
	"strings"
)

// groupRE finds every non-nested parenthesized group in the input,
// regardless of the brackets around the run. Nested opening
// parentheses never occur in valid geometry text, so a group runs from
// "(" to the next ")".
var groupRE = regexp.MustCompile(`\([^(]*?\)`)

// ParsePoints tokenizes a comma-joined run of parenthesized point
// groups into an ordered point sequence. Outer brackets, if any, are
// skipped over, so the same tokenizer serves paths, polygons, segments
// and boxes. Text with no groups yields an empty sequence, not an
// error. Shape-level arity and closure rules are not applied here;
// they belong to each shape's Encode.
func ParsePoints(s string) ([]Point, error) {
	groups := groupRE.FindAllString(s, -1)
	if len(groups) == 0 {
		return nil, nil
	}
	pts := make([]Point, 0, len(groups))
	for _, g := range groups {
		p, err := ParsePoint(g)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// joinPoints joins the textual form of each point with ",". An empty
// sequence yields the empty string, which callers treat as absence.
func joinPoints(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}
