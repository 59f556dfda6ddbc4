package selection

import "github.com/colonyops/bluebook/internal/core/bluebook"

// Level identifies one of the three dependent pickers.
type Level int

const (
	LevelPart Level = iota
	LevelSection
	LevelSubsection
)

func (l Level) String() string {
	switch l {
	case LevelPart:
		return "part"
	case LevelSection:
		return "section"
	case LevelSubsection:
		return "subsection"
	default:
		return "unknown"
	}
}

// Option is one entry of a picker. Ordinal is the option's position in the
// list it was built from and is the key used for child lookups.
type Option struct {
	Label   string
	Page    int
	Ordinal int
}

// Picker is a rendered choice list. Selected is -1 while the placeholder is
// shown.
type Picker struct {
	Level       Level
	Label       string
	Placeholder string
	Options     []Option
	Selected    int
}

// Value returns the chosen option.
func (p Picker) Value() (Option, bool) {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return Option{}, false
	}
	return p.Options[p.Selected], true
}

// IndexOfTitle returns the ordinal of the first option labelled title.
func (p Picker) IndexOfTitle(title string) (int, bool) {
	for i, opt := range p.Options {
		if opt.Label == title {
			return i, true
		}
	}
	return -1, false
}

func newPicker(level Level, opts []Option) Picker {
	p := Picker{Level: level, Options: opts, Selected: -1}
	switch level {
	case LevelPart:
		p.Label, p.Placeholder = "Select Part:", "Choose a Part"
	case LevelSection:
		p.Label, p.Placeholder = "Select Section:", "Choose a Section"
	case LevelSubsection:
		p.Label, p.Placeholder = "Select Subsection:", "Choose a Subsection"
	}
	return p
}

func partOptions(parts []bluebook.PartRef) []Option {
	opts := make([]Option, len(parts))
	for i, p := range parts {
		opts[i] = Option{Label: p.Title, Page: p.Page, Ordinal: i}
	}
	return opts
}

func sectionOptions(sections []bluebook.Section) []Option {
	opts := make([]Option, len(sections))
	for i, s := range sections {
		opts[i] = Option{Label: s.Title, Page: s.Page, Ordinal: i}
	}
	return opts
}

func subsectionOptions(subs []bluebook.Subsection) []Option {
	opts := make([]Option, len(subs))
	for i, s := range subs {
		opts[i] = Option{Label: s.Title, Page: s.PageNumber, Ordinal: i}
	}
	return opts
}
