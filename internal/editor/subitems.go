package editor

import "github.com/oliCHECK24/terminal-portfolio/internal/model"

// Direction selects a neighbor for SubItems.Move.
type Direction int

const (
	Up Direction = iota
	Down
)

// SubItems edits the nested label/value/url rows of a single option. It is
// held purely in memory: the rows only persist when the parent option's Save
// commits them as its data field.
type SubItems struct {
	items []model.SubItem
}

func NewSubItems(items []model.SubItem) *SubItems {
	return &SubItems{items: append([]model.SubItem(nil), items...)}
}

func (s *SubItems) Items() []model.SubItem { return s.items }
func (s *SubItems) Len() int               { return len(s.items) }

// Add appends a blank row.
func (s *SubItems) Add() {
	s.items = append(s.items, model.SubItem{})
}

// SubItem fields addressable by EditField.
const (
	FieldLabel = "label"
	FieldValue = "value"
	FieldURL   = "url"
)

// EditField replaces one field of the row at i.
func (s *SubItems) EditField(i int, field, value string) error {
	if i < 0 || i >= len(s.items) {
		return indexErr("edit sub-item", i, len(s.items))
	}
	switch field {
	case FieldLabel:
		s.items[i].Label = value
	case FieldValue:
		s.items[i].Value = value
	case FieldURL:
		s.items[i].URL = value
	default:
		return fieldErr(field)
	}
	return nil
}

// Delete removes the row at i.
func (s *SubItems) Delete(i int) error {
	if i < 0 || i >= len(s.items) {
		return indexErr("delete sub-item", i, len(s.items))
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Move swaps the row at i with its neighbor in the given direction. Moving
// the first row up or the last row down is a defined no-op rather than an
// error, so stale UI state cannot corrupt the list.
func (s *SubItems) Move(i int, dir Direction) error {
	if i < 0 || i >= len(s.items) {
		return indexErr("move sub-item", i, len(s.items))
	}
	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j < 0 || j >= len(s.items) {
		return nil
	}
	s.items[i], s.items[j] = s.items[j], s.items[i]
	return nil
}
