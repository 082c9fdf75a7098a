package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oliCHECK24/terminal-portfolio/internal/editor"
	"github.com/oliCHECK24/terminal-portfolio/internal/model"
)

// formModel edits one option record: the three text fields plus the nested
// sub-item rows. Sub-item state lives in an editor.SubItems and is mirrored
// into per-row inputs; nothing persists until the parent save commits.
type formModel struct {
	index int
	isNew bool

	label textinput.Model
	about textinput.Model
	value textarea.Model

	sub  *editor.SubItems
	rows []subRow

	focus int
	width int
}

type subRow struct {
	label textinput.Model
	value textinput.Model
	url   textinput.Model
}

const formFixedFields = 3 // label, about, value

func newFormModel(opt model.Option, index int, isNew bool, width int) formModel {
	f := formModel{
		index: index,
		isNew: isNew,
		sub:   editor.NewSubItems(opt.Data),
		width: width,
	}

	f.label = newInput("Label", opt.Label)
	f.about = newInput("About", opt.About)

	f.value = textarea.New()
	f.value.Placeholder = "Value (markdown)"
	f.value.SetValue(opt.Value)
	f.value.SetHeight(6)

	for _, item := range f.sub.Items() {
		f.rows = append(f.rows, newSubRow(item))
	}

	f.setFocus(0)
	return f
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Prompt = "> "
	return ti
}

func newSubRow(item model.SubItem) subRow {
	return subRow{
		label: newInput("label", item.Label),
		value: newInput("value", item.Value),
		url:   newInput("url", item.URL),
	}
}

func (f *formModel) fieldCount() int {
	return formFixedFields + 3*len(f.rows)
}

// rowAt maps a focus index to its sub-item row, or -1 for the fixed fields.
func (f *formModel) rowAt(focus int) int {
	if focus < formFixedFields {
		return -1
	}
	return (focus - formFixedFields) / 3
}

func (f *formModel) setFocus(i int) {
	n := f.fieldCount()
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	f.focus = i

	f.label.Blur()
	f.about.Blur()
	f.value.Blur()
	for r := range f.rows {
		f.rows[r].label.Blur()
		f.rows[r].value.Blur()
		f.rows[r].url.Blur()
	}

	switch i {
	case 0:
		f.label.Focus()
	case 1:
		f.about.Focus()
	case 2:
		f.value.Focus()
	default:
		row := f.rowAt(i)
		switch (i - formFixedFields) % 3 {
		case 0:
			f.rows[row].label.Focus()
		case 1:
			f.rows[row].value.Focus()
		case 2:
			f.rows[row].url.Focus()
		}
	}
}

// rebuildRows resyncs the row inputs from the sub-item editor after a
// structural mutation (add/delete/move).
func (f *formModel) rebuildRows() {
	items := f.sub.Items()
	f.rows = f.rows[:0]
	for _, item := range items {
		f.rows = append(f.rows, newSubRow(item))
	}
	if f.focus >= f.fieldCount() {
		f.focus = f.fieldCount() - 1
	}
	f.setFocus(f.focus)
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "tab", "down":
			if key.String() == "down" && f.focus == 2 {
				break // let the textarea move its own cursor
			}
			f.setFocus(f.focus + 1)
			return f, nil
		case "shift+tab", "up":
			if key.String() == "up" && f.focus == 2 {
				break
			}
			f.setFocus(f.focus - 1)
			return f, nil
		case "ctrl+n":
			f.sub.Add()
			f.rows = append(f.rows, newSubRow(model.SubItem{}))
			f.setFocus(f.fieldCount() - 3)
			return f, nil
		case "ctrl+d":
			if row := f.rowAt(f.focus); row >= 0 {
				if err := f.sub.Delete(row); err == nil {
					f.rebuildRows()
				}
			}
			return f, nil
		case "ctrl+k":
			if row := f.rowAt(f.focus); row >= 0 {
				col := (f.focus - formFixedFields) % 3
				if err := f.sub.Move(row, editor.Up); err == nil && row > 0 {
					f.focus = formFixedFields + 3*(row-1) + col
				}
				f.rebuildRows()
			}
			return f, nil
		case "ctrl+j":
			if row := f.rowAt(f.focus); row >= 0 {
				col := (f.focus - formFixedFields) % 3
				if err := f.sub.Move(row, editor.Down); err == nil && row < len(f.rows)-1 {
					f.focus = formFixedFields + 3*(row+1) + col
				}
				f.rebuildRows()
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.label, cmd = f.label.Update(msg)
	case 1:
		f.about, cmd = f.about.Update(msg)
	case 2:
		f.value, cmd = f.value.Update(msg)
	default:
		row := f.rowAt(f.focus)
		switch (f.focus - formFixedFields) % 3 {
		case 0:
			f.rows[row].label, cmd = f.rows[row].label.Update(msg)
			_ = f.sub.EditField(row, editor.FieldLabel, f.rows[row].label.Value())
		case 1:
			f.rows[row].value, cmd = f.rows[row].value.Update(msg)
			_ = f.sub.EditField(row, editor.FieldValue, f.rows[row].value.Value())
		case 2:
			f.rows[row].url, cmd = f.rows[row].url.Update(msg)
			_ = f.sub.EditField(row, editor.FieldURL, f.rows[row].url.Value())
		}
	}
	return f, cmd
}

// option assembles the full record the form currently describes.
func (f formModel) option() model.Option {
	return model.Option{
		Label: strings.TrimSpace(f.label.Value()),
		About: f.about.Value(),
		Value: f.value.Value(),
		Data:  f.sub.Items(),
	}
}

func (f formModel) view() string {
	var b strings.Builder

	title := "edit option"
	if f.isNew {
		title = "new option"
	}
	b.WriteString(styleTitle().Render(title))
	b.WriteString("\n\n")

	b.WriteString(f.label.View())
	b.WriteString("\n")
	b.WriteString(f.about.View())
	b.WriteString("\n")
	b.WriteString(f.value.View())
	b.WriteString("\n\n")

	b.WriteString(styleMuted().Render("sub-items"))
	b.WriteString("\n")
	if len(f.rows) == 0 {
		b.WriteString(styleMuted().Render("  (none, ctrl+n adds a row)"))
		b.WriteString("\n")
	}
	for i := range f.rows {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			f.rows[i].label.View(), "  ",
			f.rows[i].value.View(), "  ",
			f.rows[i].url.View(),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleMuted().Render("tab: next field   ctrl+n: add row   ctrl+d: delete row   ctrl+k/ctrl+j: move row   ctrl+s: save   esc: cancel"))
	return b.String()
}
