// Package tui is the interactive document navigator. It renders the selection
// controller's pickers as a Bubble Tea form and opens the resolved page.
package tui

import (
	"context"
	"errors"
	"slices"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/logging"
	"github.com/colonyops/bluebook/internal/core/selection"
	"github.com/colonyops/bluebook/internal/core/styles"
	"github.com/colonyops/bluebook/internal/tui/components/form"
)

// Source loads the document list and index.
type Source interface {
	ListDocuments(ctx context.Context) ([]bluebook.DocumentEntry, error)
	FetchIndex(ctx context.Context) (map[string]bluebook.DocumentStructure, error)
	ViewURL(path string) string
}

// Opener opens a view URL in a new browsing context.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// Options configures a Model.
type Options struct {
	Source Source
	Index  *bluebook.Index
	Opener Opener
}

// Model is the Bubble Tea model for the navigator.
type Model struct {
	ctx    context.Context
	source Source
	opener Opener
	index  *bluebook.Index
	ctrl   *selection.Controller
	log    zerolog.Logger

	docs      []bluebook.DocumentEntry
	docField  *form.SelectFormField
	granField *form.SelectFormField
	pickers   []*form.SelectFormField
	submit    *form.ButtonField
	dialog    *form.Dialog

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	loadingDocs  bool
	loadingIndex bool
	docsErr      error
	alert        string
	opened       string
	width        int
	height       int
	quitting     bool
}

// New creates the navigator model. The index is shared with the caller and is
// loaded by the model's Init command.
func New(ctx context.Context, opts Options) Model {
	index := opts.Index
	if index == nil {
		index = bluebook.NewIndex()
	}

	granularities := bluebook.Granularities()
	granLabels := make([]string, len(granularities))
	for i, g := range granularities {
		granLabels[i] = g.Label()
	}

	docField := form.NewSelectFormField("Select Document:", "Choose a Document", nil)
	granField := form.NewSelectFormField("Select Granularity:", "Choose a Granularity", granLabels)
	granField.SetDisabled(true)
	submit := form.NewButtonField("Submit")

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.TextPrimaryStyle

	m := Model{
		ctx:          ctx,
		source:       opts.Source,
		opener:       opts.Opener,
		index:        index,
		ctrl:         selection.New(index),
		log:          logging.Component("tui"),
		docField:     docField,
		granField:    granField,
		submit:       submit,
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      s,
		loadingDocs:  true,
		loadingIndex: true,
	}
	m.dialog = form.NewDialog(m.fields()...)
	return m
}

// Init starts the document list and index loads. They complete independently.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadDocuments(m.ctx, m.source),
		loadIndex(m.ctx, m.source),
		m.spinner.Tick,
	)
}

// Update handles messages for the navigator.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, f := range m.selectFields() {
			f.SetWidth(max(msg.Width-4, 20))
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case documentsLoadedMsg:
		return m.handleDocumentsLoaded(msg)
	case indexLoadedMsg:
		return m.handleIndexLoaded(msg)
	case openedMsg:
		return m.handleOpened(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	return m, cmd
}

func (m Model) handleDocumentsLoaded(msg documentsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingDocs = false
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("failed to load documents")
		m.docsErr = msg.err
		m.updateRetry()
		return m, nil
	}

	m.docsErr = nil
	m.docs = msg.docs
	labels := make([]string, len(msg.docs))
	for i, d := range msg.docs {
		labels[i] = d.Label()
	}
	m.docField.SetOptions(labels)
	m.updateRetry()
	return m, nil
}

func (m Model) handleIndexLoaded(msg indexLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingIndex = false
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("failed to load cached titles")
		m.index.Fail(msg.err)
	} else {
		m.index.Load(msg.docs)
		m.log.Debug().Int("documents", len(msg.docs)).Msg("index loaded")
	}

	m.granField.SetDisabled(!m.ctrl.GranularityEnabled())
	m.updateRetry()
	return m, nil
}

func (m Model) handleOpened(msg openedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.alert = "Could not open " + msg.url + ": " + msg.err.Error()
		return m, nil
	}
	m.opened = msg.url
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry):
		return m.retry()
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	case key.Matches(msg, m.keys.Choose):
		if m.dialog.Focused() == m.submit {
			return m.submitForm()
		}
		return m.commitFocused()
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	return m, cmd
}

// commitFocused applies the highlighted option of the focused field to the
// controller and advances focus on success.
func (m Model) commitFocused() (tea.Model, tea.Cmd) {
	focused := m.dialog.Focused()
	m.alert = ""

	switch focused {
	case m.docField:
		i, ok := m.docField.Choose()
		if !ok {
			return m, nil
		}
		enabled := m.ctrl.ChooseDocument(m.docs[i].Filename)
		m.opened = ""
		m.granField.Reset()
		m.granField.SetDisabled(!enabled)
		m.syncPickers()
		return m, m.dialog.Next()

	case m.granField:
		i, ok := m.granField.Choose()
		if !ok {
			return m, nil
		}
		if !m.ctrl.ChooseGranularity(bluebook.Granularities()[i]) {
			m.granField.Reset()
			return m, nil
		}
		m.syncPickers()
		return m, m.dialog.Next()
	}

	level := m.pickerLevel(focused)
	if level < 0 {
		return m, nil
	}
	i, ok := m.pickers[level].Choose()
	if !ok {
		return m, nil
	}
	if err := m.ctrl.Choose(selection.Level(level), i); err != nil {
		m.log.Debug().Err(err).Int("level", level).Msg("choose failed")
		m.alert = err.Error()
		return m, nil
	}
	m.syncPickers()
	return m, m.dialog.Next()
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	target, err := m.ctrl.Submit()
	if err != nil {
		var verr *selection.ValidationError
		if errors.As(err, &verr) {
			m.alert = verr.Message
		} else {
			m.alert = err.Error()
		}
		return m, nil
	}

	url := m.source.ViewURL(target.Path)
	m.log.Info().Str("document", target.Document).Int("page", target.Page).Msg("submitting")

	m.alert = ""
	m.opened = ""
	m.docField.Reset()
	m.granField.Reset()
	m.granField.SetDisabled(true)
	m.syncPickers()
	m.dialog.Focus(m.docField)

	return m, openURL(m.ctx, m.opener, target.Document, url)
}

func (m Model) retry() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.docsErr != nil && !m.loadingDocs {
		m.loadingDocs = true
		cmds = append(cmds, loadDocuments(m.ctx, m.source))
	}
	if m.index.State() == bluebook.IndexFailed && !m.loadingIndex {
		m.loadingIndex = true
		cmds = append(cmds, loadIndex(m.ctx, m.source))
	}
	if len(cmds) == 0 {
		return m, nil
	}
	m.alert = ""
	m.updateRetry()
	cmds = append(cmds, m.spinner.Tick)
	return m, tea.Batch(cmds...)
}

// syncPickers mirrors the controller's pickers into select fields. Fields are
// reused per level so focus survives repopulation.
func (m *Model) syncPickers() {
	pickers := m.ctrl.Pickers()

	fields := make([]*form.SelectFormField, len(pickers))
	for i, p := range pickers {
		labels := make([]string, len(p.Options))
		for j, opt := range p.Options {
			labels[j] = opt.Label
		}

		var f *form.SelectFormField
		if i < len(m.pickers) && m.pickers[i].Label() == p.Label {
			f = m.pickers[i]
			if !slices.Equal(f.Options(), labels) {
				f.SetOptions(labels)
			}
		} else {
			f = form.NewSelectFormField(p.Label, p.Placeholder, labels)
			if m.width > 0 {
				f.SetWidth(max(m.width-4, 20))
			}
		}
		f.ChooseIndex(p.Selected)
		fields[i] = f
	}

	m.pickers = fields
	m.dialog.SetFields(m.fields())
}

func (m *Model) updateRetry() {
	failed := m.docsErr != nil || m.index.State() == bluebook.IndexFailed
	m.keys.Retry.SetEnabled(failed && !m.loading())
}

func (m Model) fields() []form.Field {
	fields := []form.Field{m.docField, m.granField}
	for _, p := range m.pickers {
		fields = append(fields, p)
	}
	return append(fields, m.submit)
}

func (m Model) selectFields() []*form.SelectFormField {
	return append([]*form.SelectFormField{m.docField, m.granField}, m.pickers...)
}

func (m Model) pickerLevel(f form.Field) int {
	for i, p := range m.pickers {
		if form.Field(p) == f {
			return i
		}
	}
	return -1
}

func (m Model) loading() bool {
	return m.loadingDocs || m.loadingIndex
}

// Controller exposes the selection controller for inspection.
func (m Model) Controller() *selection.Controller { return m.ctrl }
