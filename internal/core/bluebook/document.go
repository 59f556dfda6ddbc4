// Package bluebook defines the document index served by a bluebook document
// server: documents, their parts, sections and subsections.
package bluebook

import (
	"fmt"
	"net/url"
	"strings"
)

// DocumentEntry is a single row of the document list.
type DocumentEntry struct {
	Filename string `json:"filename"`
	Display  string `json:"display"`
}

// Label returns the display name, falling back to one derived from the filename.
func (d DocumentEntry) Label() string {
	if d.Display != "" {
		return d.Display
	}
	return DisplayName(d.Filename)
}

// PartRef is a top-level part of a document.
type PartRef struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// Section belongs to a part and may hold subsections.
type Section struct {
	Title       string       `json:"title"`
	Page        int          `json:"page"`
	Subsections []Subsection `json:"subsections"`
}

// Subsection is the deepest navigable level.
type Subsection struct {
	Title      string `json:"title"`
	PageNumber int    `json:"page_number"`
}

// DocumentStructure is the parsed outline of a single document. Sections are
// keyed by the title of the part they belong to.
type DocumentStructure struct {
	Parts    []PartRef            `json:"parts"`
	Sections map[string][]Section `json:"sections"`
}

// SectionsOf returns the sections listed under the part title. A title with
// no entry yields an empty slice.
func (s DocumentStructure) SectionsOf(partTitle string) []Section {
	if s.Sections == nil {
		return nil
	}
	return s.Sections[partTitle]
}

// Granularity is the drill-down depth the user targets.
type Granularity string

const (
	GranularityPart       Granularity = "part"
	GranularitySection    Granularity = "section"
	GranularitySubsection Granularity = "subsection"
)

// Granularities lists all granularities from coarsest to finest.
func Granularities() []Granularity {
	return []Granularity{GranularityPart, GranularitySection, GranularitySubsection}
}

// IsValid reports whether g is a known granularity.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityPart, GranularitySection, GranularitySubsection:
		return true
	default:
		return false
	}
}

// Depth returns the number of pickers the granularity renders.
func (g Granularity) Depth() int {
	switch g {
	case GranularityPart:
		return 1
	case GranularitySection:
		return 2
	case GranularitySubsection:
		return 3
	default:
		return 0
	}
}

// Label returns the capitalized name used in pickers.
func (g Granularity) Label() string {
	switch g {
	case GranularityPart:
		return "Part"
	case GranularitySection:
		return "Section"
	case GranularitySubsection:
		return "Subsection"
	default:
		return string(g)
	}
}

// ParseGranularity parses a case-insensitive granularity name.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", fmt.Errorf("unknown granularity %q", s)
	}
	return g, nil
}

// ViewPath returns the server path that shows page of the document.
func ViewPath(filename string, page int) string {
	return fmt.Sprintf("/view_pdf/%s?page=%d", url.PathEscape(filename), page)
}

var monthNames = map[string]string{
	"01": "January", "02": "February", "03": "March", "04": "April",
	"05": "May", "06": "June", "07": "July", "08": "August",
	"09": "September", "10": "October", "11": "November", "12": "December",
}

// DisplayName derives a human name from a "<year>_<month>.pdf" filename.
// Filenames that do not follow the convention are returned unchanged.
func DisplayName(filename string) string {
	base := strings.TrimSuffix(filename, ".pdf")
	year, month, ok := strings.Cut(base, "_")
	if !ok || year == "" || strings.Contains(month, "_") {
		return filename
	}

	name, ok := monthNames[month]
	if !ok {
		name = "Unknown"
	}
	return fmt.Sprintf("%s %s, RIDOT Bluebook", name, year)
}
