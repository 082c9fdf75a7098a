package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oliCHECK24/terminal-portfolio/internal/model"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestForm_PrefillsAndAssemblesOption(t *testing.T) {
	opt := model.Option{
		Label: "projects",
		About: "ls",
		Value: "my stuff",
		Data:  []model.SubItem{{Label: "repo", Value: "d", URL: "https://example.com"}},
	}
	f := newFormModel(opt, 1, false, 80)

	got := f.option()
	if got.Label != "projects" || got.About != "ls" || got.Value != "my stuff" {
		t.Fatalf("got %+v", got)
	}
	if len(got.Data) != 1 || got.Data[0].URL != "https://example.com" {
		t.Fatalf("got %+v", got.Data)
	}
}

func TestForm_TypingEditsFocusedField(t *testing.T) {
	f := newFormModel(model.Option{}, 0, true, 80)

	f, _ = f.update(keyRunes("hi"))
	if got := f.option().Label; got != "hi" {
		t.Fatalf("label = %q", got)
	}

	f, _ = f.update(tea.KeyMsg{Type: tea.KeyTab})
	f, _ = f.update(keyRunes("yo"))
	if got := f.option().About; got != "yo" {
		t.Fatalf("about = %q", got)
	}
}

func TestForm_AddRowAndTypeSyncsSubItems(t *testing.T) {
	f := newFormModel(model.Option{}, 0, true, 80)

	f, _ = f.update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if f.sub.Len() != 1 {
		t.Fatalf("expected one row, got %d", f.sub.Len())
	}
	if f.focus != formFixedFields {
		t.Fatalf("focus = %d, want the new row's label", f.focus)
	}

	f, _ = f.update(keyRunes("repo"))
	if got := f.option().Data; len(got) != 1 || got[0].Label != "repo" {
		t.Fatalf("got %+v", got)
	}
}

func TestForm_MoveRowKeepsColumnFocus(t *testing.T) {
	opt := model.Option{Data: []model.SubItem{{Label: "r1"}, {Label: "r2"}}}
	f := newFormModel(opt, 0, false, 80)

	// Focus the second row's value column, then move the row up.
	f.setFocus(formFixedFields + 3 + 1)
	f, _ = f.update(tea.KeyMsg{Type: tea.KeyCtrlK})

	items := f.sub.Items()
	if items[0].Label != "r2" || items[1].Label != "r1" {
		t.Fatalf("rows not swapped: %+v", items)
	}
	if f.focus != formFixedFields+1 {
		t.Fatalf("focus = %d, want the moved row's value column", f.focus)
	}
}

func TestForm_DeleteRow(t *testing.T) {
	opt := model.Option{Data: []model.SubItem{{Label: "r1"}, {Label: "r2"}}}
	f := newFormModel(opt, 0, false, 80)

	f.setFocus(formFixedFields)
	f, _ = f.update(tea.KeyMsg{Type: tea.KeyCtrlD})
	items := f.sub.Items()
	if len(items) != 1 || items[0].Label != "r2" {
		t.Fatalf("got %+v", items)
	}
	if len(f.rows) != 1 {
		t.Fatalf("row inputs not rebuilt: %d", len(f.rows))
	}
}

func TestForm_FocusWrapsAround(t *testing.T) {
	f := newFormModel(model.Option{}, 0, true, 80)

	f.setFocus(0)
	f, _ = f.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focus != f.fieldCount()-1 {
		t.Fatalf("focus = %d, want last field", f.focus)
	}
	f, _ = f.update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focus != 0 {
		t.Fatalf("focus = %d, want 0", f.focus)
	}
}
