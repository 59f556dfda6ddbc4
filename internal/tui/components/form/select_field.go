package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/bluebook/internal/core/styles"
)

const maxVisible = 8

// SelectFormField is a single-select form field wrapping list.Model. Moving the
// cursor does not change the value; Choose commits the highlighted option.
type SelectFormField struct {
	list        list.Model
	options     []string
	label       string
	placeholder string
	chosen      int
	focused     bool
	disabled    bool
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct {
	field *SelectFormField
}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	suffix := ""

	if item.index == d.field.chosen {
		style = styles.SelectFieldItemChosenStyle
		suffix = " ✓"
	}
	if index == m.Index() {
		style = styles.SelectFieldItemSelectedStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.label)+suffix)
}

// NewSelectFormField creates a single-select field. placeholder is shown while
// no option is chosen.
func NewSelectFormField(label, placeholder string, options []string) *SelectFormField {
	f := &SelectFormField{
		label:       label,
		placeholder: placeholder,
		chosen:      -1,
	}

	l := list.New(nil, selectDelegate{field: f}, 40, 1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("option", "options")
	l.Styles.TitleBar = lipgloss.NewStyle()

	// the surrounding form owns these keys
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	f.list = l
	f.SetOptions(options)
	return f
}

// SetOptions replaces the options, clears the chosen value and moves the
// cursor to the first option.
func (f *SelectFormField) SetOptions(options []string) {
	f.options = append([]string(nil), options...)

	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
	}

	_ = f.list.SetItems(items)
	f.list.SetHeight(max(min(len(options), maxVisible), 1))
	f.list.SetShowPagination(len(options) > maxVisible)
	f.list.Select(0)
	f.chosen = -1
}

// Options returns the option labels.
func (f *SelectFormField) Options() []string { return f.options }

// Len returns the number of options.
func (f *SelectFormField) Len() int { return len(f.options) }

// Cursor returns the index of the highlighted option.
func (f *SelectFormField) Cursor() int {
	if item, ok := f.list.SelectedItem().(selectItem); ok {
		return item.index
	}
	return -1
}

// Choose commits the highlighted option and returns its index. It reports
// false when the field is disabled or empty.
func (f *SelectFormField) Choose() (int, bool) {
	if f.disabled {
		return -1, false
	}
	i := f.Cursor()
	if i < 0 {
		return -1, false
	}
	f.chosen = i
	return i, true
}

// ChooseIndex sets the chosen option and moves the cursor to it. A negative
// index clears the value.
func (f *SelectFormField) ChooseIndex(i int) {
	if i < 0 || i >= len(f.options) {
		f.chosen = -1
		return
	}
	f.chosen = i
	f.list.Select(i)
}

// Chosen returns the index of the chosen option, or -1.
func (f *SelectFormField) Chosen() int { return f.chosen }

// Reset clears the chosen value and returns the cursor to the top.
func (f *SelectFormField) Reset() {
	f.chosen = -1
	f.list.Select(0)
}

// SetDisabled toggles whether the field accepts input.
func (f *SelectFormField) SetDisabled(disabled bool) { f.disabled = disabled }

// Disabled reports whether the field is disabled.
func (f *SelectFormField) Disabled() bool { return f.disabled }

// SetWidth sets the width of the option list.
func (f *SelectFormField) SetWidth(w int) { f.list.SetWidth(w) }

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused || f.disabled {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectFormField) View() string {
	titleStyle := styles.TextMutedStyle
	borderStyle := styles.FormFieldStyle
	switch {
	case f.disabled:
		borderStyle = styles.FormFieldDisabledStyle
	case f.focused:
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	value := styles.SelectFieldPlaceholderStyle.Render(f.placeholder)
	if f.chosen >= 0 {
		value = styles.TextForegroundStyle.Render(f.options[f.chosen])
	}

	lines := []string{titleStyle.Render(f.label), value}
	if f.focused && !f.disabled {
		lines = append(lines, f.list.View())
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

func (f *SelectFormField) Focused() bool { return f.focused }

func (f *SelectFormField) Value() any {
	if f.chosen < 0 {
		return ""
	}
	return f.options[f.chosen]
}

func (f *SelectFormField) Label() string { return f.label }
