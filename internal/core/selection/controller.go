// Package selection implements the drill-down state machine that takes a user
// from a document through its parts, sections and subsections to a page.
//
// The Controller holds no UI state. Renderers read Pickers and call the
// Choose* methods in response to user input.
package selection

import (
	"fmt"

	"github.com/colonyops/bluebook/internal/core/bluebook"
)

// Stage is the position of the controller in the drill-down.
type Stage int

const (
	StageNoDocument Stage = iota
	StageDocumentChosen
	StagePartPending
	StageSectionPending
	StageSubsectionPending
	StageResolved
)

func (s Stage) String() string {
	switch s {
	case StageNoDocument:
		return "no document"
	case StageDocumentChosen:
		return "document chosen"
	case StagePartPending:
		return "part pending"
	case StageSectionPending:
		return "section pending"
	case StageSubsectionPending:
		return "subsection pending"
	case StageResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Target is a resolved navigation target.
type Target struct {
	Document string
	Page     int
	Path     string
}

// Controller manages the selection state for a single form.
type Controller struct {
	index *bluebook.Index

	document    string
	granularity bluebook.Granularity
	structure   bluebook.DocumentStructure
	pickers     []Picker

	// backing data for the section and subsection pickers, aligned with
	// their option ordinals
	sections    []bluebook.Section
	subsections []bluebook.Subsection
}

// New creates a controller reading document structures from index.
func New(index *bluebook.Index) *Controller {
	return &Controller{index: index}
}

// Document returns the chosen document, or "" when none is chosen.
func (c *Controller) Document() string { return c.document }

// Granularity returns the chosen granularity, or "" when none is chosen.
func (c *Controller) Granularity() bluebook.Granularity { return c.granularity }

// Stage returns the current stage.
func (c *Controller) Stage() Stage {
	switch {
	case c.document == "":
		return StageNoDocument
	case c.granularity == "":
		return StageDocumentChosen
	}

	if _, ok := c.terminal().Value(); ok {
		return StageResolved
	}

	switch c.granularity {
	case bluebook.GranularitySection:
		return StageSectionPending
	case bluebook.GranularitySubsection:
		return StageSubsectionPending
	default:
		return StagePartPending
	}
}

// Pickers returns a copy of the rendered pickers, outermost first.
func (c *Controller) Pickers() []Picker {
	out := make([]Picker, len(c.pickers))
	for i, p := range c.pickers {
		p.Options = append([]Option(nil), p.Options...)
		out[i] = p
	}
	return out
}

// Picker returns the rendered picker for level.
func (c *Controller) Picker(level Level) (Picker, bool) {
	if int(level) < 0 || int(level) >= len(c.pickers) {
		return Picker{}, false
	}
	return c.pickers[level], true
}

// GranularityEnabled reports whether a granularity can be chosen: a document
// is chosen and the index holds its structure.
func (c *Controller) GranularityEnabled() bool {
	if c.document == "" || c.index == nil {
		return false
	}
	_, ok := c.index.Lookup(c.document)
	return ok
}

// ChooseDocument selects a document and clears everything downstream. An
// empty id returns the controller to StageNoDocument. The return value
// reports whether granularity selection is enabled for the document.
func (c *Controller) ChooseDocument(id string) bool {
	c.Reset()
	c.document = id
	return c.GranularityEnabled()
}

// ChooseGranularity renders the pickers for g. It is a no-op returning false
// when no indexed document is chosen or g is unknown. Choosing a granularity
// again resets its pickers to the placeholder state.
func (c *Controller) ChooseGranularity(g bluebook.Granularity) bool {
	if !g.IsValid() || c.document == "" || c.index == nil {
		return false
	}
	structure, ok := c.index.Lookup(c.document)
	if !ok {
		return false
	}

	c.clearPickers()
	c.granularity = g
	c.structure = structure

	c.pickers = append(c.pickers, newPicker(LevelPart, partOptions(structure.Parts)))
	if g.Depth() >= 2 {
		c.pickers = append(c.pickers, newPicker(LevelSection, nil))
	}
	if g.Depth() >= 3 {
		c.pickers = append(c.pickers, newPicker(LevelSubsection, nil))
	}
	return true
}

// ChoosePart selects the part at ordinal i and repopulates the section
// picker, if rendered, from the sections listed under that part.
func (c *Controller) ChoosePart(i int) error {
	if err := c.checkOption(LevelPart, i); err != nil {
		return err
	}

	c.pickers[LevelPart].Selected = i
	if len(c.pickers) < 2 {
		return nil
	}

	part := c.structure.Parts[c.pickers[LevelPart].Options[i].Ordinal]
	c.sections = c.structure.SectionsOf(part.Title)
	c.pickers[LevelSection] = newPicker(LevelSection, sectionOptions(c.sections))

	if len(c.pickers) >= 3 {
		c.subsections = nil
		c.pickers[LevelSubsection] = newPicker(LevelSubsection, nil)
	}
	return nil
}

// ChooseSection selects the section at ordinal i and repopulates the
// subsection picker, if rendered, from that exact section.
func (c *Controller) ChooseSection(i int) error {
	if err := c.checkOption(LevelSection, i); err != nil {
		return err
	}

	c.pickers[LevelSection].Selected = i
	if len(c.pickers) < 3 {
		return nil
	}

	section := c.sections[c.pickers[LevelSection].Options[i].Ordinal]
	c.subsections = section.Subsections
	c.pickers[LevelSubsection] = newPicker(LevelSubsection, subsectionOptions(c.subsections))
	return nil
}

// ChooseSubsection selects the subsection at ordinal i.
func (c *Controller) ChooseSubsection(i int) error {
	if err := c.checkOption(LevelSubsection, i); err != nil {
		return err
	}
	c.pickers[LevelSubsection].Selected = i
	return nil
}

// Choose dispatches to the Choose method for level.
func (c *Controller) Choose(level Level, i int) error {
	switch level {
	case LevelPart:
		return c.ChoosePart(i)
	case LevelSection:
		return c.ChooseSection(i)
	case LevelSubsection:
		return c.ChooseSubsection(i)
	default:
		return fmt.Errorf("%s: %w", level, ErrNotRendered)
	}
}

// ChoosePartTitle selects the first part labelled title.
func (c *Controller) ChoosePartTitle(title string) error {
	return c.chooseTitle(LevelPart, title)
}

// ChooseSectionTitle selects the first section labelled title under the
// chosen part.
func (c *Controller) ChooseSectionTitle(title string) error {
	return c.chooseTitle(LevelSection, title)
}

// ChooseSubsectionTitle selects the first subsection labelled title under the
// chosen section.
func (c *Controller) ChooseSubsectionTitle(title string) error {
	return c.chooseTitle(LevelSubsection, title)
}

// Submit resolves the page from the terminal picker. On success the
// selection state is discarded and the navigation target is returned.
func (c *Controller) Submit() (Target, error) {
	if c.document == "" || c.granularity == "" {
		return Target{}, ErrIncomplete
	}

	opt, ok := c.terminal().Value()
	if !ok || opt.Page < 1 {
		return Target{}, ErrInvalidSelection
	}

	target := Target{
		Document: c.document,
		Page:     opt.Page,
		Path:     bluebook.ViewPath(c.document, opt.Page),
	}
	c.Reset()
	return target, nil
}

// Reset discards the whole selection.
func (c *Controller) Reset() {
	c.document = ""
	c.clearPickers()
}

func (c *Controller) clearPickers() {
	c.granularity = ""
	c.structure = bluebook.DocumentStructure{}
	c.pickers = nil
	c.sections = nil
	c.subsections = nil
}

func (c *Controller) terminal() Picker {
	if len(c.pickers) == 0 {
		return Picker{Selected: -1}
	}
	return c.pickers[len(c.pickers)-1]
}

func (c *Controller) checkOption(level Level, i int) error {
	p, ok := c.Picker(level)
	if !ok {
		return fmt.Errorf("%s: %w", level, ErrNotRendered)
	}
	if i < 0 || i >= len(p.Options) {
		return fmt.Errorf("%s option %d: %w", level, i, ErrOutOfRange)
	}
	return nil
}

func (c *Controller) chooseTitle(level Level, title string) error {
	p, ok := c.Picker(level)
	if !ok {
		return fmt.Errorf("%s: %w", level, ErrNotRendered)
	}
	i, ok := p.IndexOfTitle(title)
	if !ok {
		return fmt.Errorf("%s %q: %w", level, title, ErrNotFound)
	}
	return c.Choose(level, i)
}
