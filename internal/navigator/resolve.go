package navigator

import (
	"errors"
	"fmt"

	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/selection"
)

var (
	// ErrUnknownDocument is returned when a document is not in the index.
	ErrUnknownDocument = errors.New("document not in index")

	// ErrMissingArgument is returned when a value is needed but was not given
	// and no Chooser is available.
	ErrMissingArgument = errors.New("missing argument")
)

// Chooser picks one of options for a prompt title and returns its index.
type Chooser interface {
	Choose(title string, options []string) (int, error)
}

// Request addresses a page by titles. Empty fields are filled by the Chooser.
type Request struct {
	Document   string
	Part       string
	Section    string
	Subsection string
}

// Granularity is the granularity implied by the deepest title given, or ""
// when no title is given.
func (r Request) Granularity() bluebook.Granularity {
	switch {
	case r.Subsection != "":
		return bluebook.GranularitySubsection
	case r.Section != "":
		return bluebook.GranularitySection
	case r.Part != "":
		return bluebook.GranularityPart
	default:
		return ""
	}
}

func (r Request) title(level selection.Level) string {
	switch level {
	case selection.LevelPart:
		return r.Part
	case selection.LevelSection:
		return r.Section
	default:
		return r.Subsection
	}
}

// Resolve drives a selection controller through req and returns the
// navigation target. Titles resolve to the first option with that label.
// Missing values are asked of chooser; a nil chooser turns them into
// ErrMissingArgument. The index must be loaded.
func (a *App) Resolve(req Request, chooser Chooser) (selection.Target, error) {
	ctrl := selection.New(a.Index)

	doc := req.Document
	if doc == "" {
		names := a.Index.Filenames()
		i, err := choose(chooser, "Select Document:", "document", names)
		if err != nil {
			return selection.Target{}, err
		}
		doc = names[i]
	}

	if !ctrl.ChooseDocument(doc) {
		return selection.Target{}, fmt.Errorf("%q: %w", doc, ErrUnknownDocument)
	}

	g := req.Granularity()
	if g == "" {
		all := bluebook.Granularities()
		labels := make([]string, len(all))
		for i, gr := range all {
			labels[i] = gr.Label()
		}
		i, err := choose(chooser, "Select Granularity:", "granularity", labels)
		if err != nil {
			return selection.Target{}, err
		}
		g = all[i]
	}
	ctrl.ChooseGranularity(g)

	for level := range selection.Level(g.Depth()) {
		if err := chooseLevel(ctrl, level, req.title(level), chooser); err != nil {
			return selection.Target{}, err
		}
	}

	return ctrl.Submit()
}

func chooseLevel(ctrl *selection.Controller, level selection.Level, title string, chooser Chooser) error {
	if title != "" {
		switch level {
		case selection.LevelPart:
			return ctrl.ChoosePartTitle(title)
		case selection.LevelSection:
			return ctrl.ChooseSectionTitle(title)
		default:
			return ctrl.ChooseSubsectionTitle(title)
		}
	}

	p, ok := ctrl.Picker(level)
	if !ok {
		return fmt.Errorf("%s: %w", level, selection.ErrNotRendered)
	}
	labels := make([]string, len(p.Options))
	for i, opt := range p.Options {
		labels[i] = opt.Label
	}

	i, err := choose(chooser, p.Label, level.String(), labels)
	if err != nil {
		return err
	}
	return ctrl.Choose(level, i)
}

func choose(chooser Chooser, title, what string, options []string) (int, error) {
	if chooser == nil {
		return -1, fmt.Errorf("%s: %w", what, ErrMissingArgument)
	}
	if len(options) == 0 {
		return -1, fmt.Errorf("no %s options: %w", what, selection.ErrNotFound)
	}
	i, err := chooser.Choose(title, options)
	if err != nil {
		return -1, err
	}
	if i < 0 || i >= len(options) {
		return -1, fmt.Errorf("%s option %d: %w", what, i, selection.ErrOutOfRange)
	}
	return i, nil
}
