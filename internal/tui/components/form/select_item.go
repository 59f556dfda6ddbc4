package form

// selectItem is the list item used by select fields. index is the option's
// position in the field's options, which the selection controller uses as the
// option ordinal.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }
