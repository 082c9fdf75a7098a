package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oliCHECK24/terminal-portfolio/internal/config"
	"github.com/oliCHECK24/terminal-portfolio/internal/editor"
	"github.com/oliCHECK24/terminal-portfolio/internal/model"
)

type view int

const (
	viewList view = iota
	viewForm
	viewPreview
	viewConfirmDelete
	viewRename
)

type appModel struct {
	ed   *editor.List
	pres config.Presentation

	view view
	list list.Model
	form formModel

	renameInput textinput.Model
	deleteIndex int
	preview     string

	status      string
	statusIsErr bool

	width  int
	height int
}

func newAppModel(ed *editor.List) appModel {
	pres := config.FromEnv()

	l := list.New(optionItems(ed.Options()), newOptionDelegate(), 0, 0)
	l.Title = listTitle(pres, ed.Username())
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = styleTitle()

	return appModel{ed: ed, pres: pres, list: l}
}

func listTitle(pres config.Presentation, username string) string {
	who := username
	if who == "" {
		who = "default"
	}
	return pres.Prompt() + " edit " + who
}

func optionItems(opts []model.Option) []list.Item {
	items := make([]list.Item, 0, len(opts))
	for _, o := range opts {
		items = append(items, optionItem{opt: o})
	}
	return items
}

func (m *appModel) syncList() {
	m.list.SetItems(optionItems(m.ed.Options()))
}

func (m *appModel) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *appModel) setError(err error) {
	if err == nil {
		return
	}
	m.status = err.Error()
	m.statusIsErr = true
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-3)
		return m, nil
	case tea.KeyMsg:
		switch m.view {
		case viewList:
			return m.updateList(msg)
		case viewForm:
			return m.updateForm(msg)
		case viewPreview:
			return m.updatePreview(msg)
		case viewConfirmDelete:
			return m.updateConfirmDelete(msg)
		case viewRename:
			return m.updateRename(msg)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	i := m.list.Index()
	n := m.ed.Len()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter":
		if i < 0 || i >= n {
			return m, nil
		}
		if err := m.ed.ToggleEdit(i); err != nil {
			m.setError(err)
			return m, nil
		}
		m.form = newFormModel(m.ed.Options()[i], i, false, m.width)
		m.view = viewForm
		return m, nil
	case "a":
		m.ed.BeginAdd()
		m.form = newFormModel(model.Option{}, 0, true, m.width)
		m.view = viewForm
		return m, nil
	case "d":
		if i < 0 || i >= n {
			return m, nil
		}
		m.deleteIndex = i
		m.view = viewConfirmDelete
		return m, nil
	case "K":
		if i > 0 && i < n {
			if err := m.ed.Reorder(context.Background(), i, i-1); err != nil {
				m.setError(err)
				return m, nil
			}
			m.syncList()
			m.list.Select(i - 1)
		}
		return m, nil
	case "J":
		if i >= 0 && i < n-1 {
			if err := m.ed.Reorder(context.Background(), i, i+1); err != nil {
				m.setError(err)
				return m, nil
			}
			m.syncList()
			m.list.Select(i + 1)
		}
		return m, nil
	case "v":
		if i < 0 || i >= n {
			return m, nil
		}
		m.preview = renderMarkdown(m.ed.Options()[i].Value, m.width-4)
		m.view = viewPreview
		return m, nil
	case "r":
		ti := newInput("new username", m.ed.Username())
		ti.Focus()
		m.renameInput = ti
		m.view = viewRename
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.form.isNew {
			m.ed.CancelAdd()
		} else {
			// Leave edit mode without saving.
			_ = m.ed.ToggleEdit(m.form.index)
		}
		m.view = viewList
		return m, nil
	case "ctrl+s":
		opt := m.form.option()
		if opt.Label == "" {
			m.setError(errEmptyLabel)
			return m, nil
		}
		if err := m.ed.Save(context.Background(), m.form.index, m.form.isNew, opt); err != nil {
			// The editor reverted to the last persisted list; stay in the
			// form so nothing typed is lost.
			m.setError(err)
			return m, nil
		}
		m.syncList()
		if m.form.isNew {
			m.list.Select(m.ed.Len() - 1)
		}
		m.setStatus("saved")
		m.view = viewList
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "v":
		m.view = viewList
	}
	return m, nil
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if err := m.ed.Delete(context.Background(), m.deleteIndex); err != nil {
			m.setError(err)
		} else {
			m.setStatus("deleted")
		}
		m.syncList()
		m.view = viewList
	case "n", "esc":
		m.view = viewList
	}
	return m, nil
}

func (m appModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewList
		return m, nil
	case "enter":
		newName := strings.TrimSpace(m.renameInput.Value())
		if err := m.ed.Rename(context.Background(), newName); err != nil {
			// Navigation only follows a confirmed rename.
			m.setError(err)
			return m, nil
		}
		m.list.Title = listTitle(m.pres, m.ed.Username())
		m.setStatus("renamed to " + m.ed.Username())
		m.view = viewList
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	var body string
	switch m.view {
	case viewForm:
		body = m.form.view()
	case viewPreview:
		body = m.preview + "\n\n" + styleMuted().Render("esc: back")
	case viewConfirmDelete:
		label := ""
		if opts := m.ed.Options(); m.deleteIndex >= 0 && m.deleteIndex < len(opts) {
			label = opts[m.deleteIndex].Label
		}
		body = styleTitle().Render("delete \""+label+"\"?") + "\n\n" +
			styleMuted().Render("y/enter: delete   n/esc: cancel")
	case viewRename:
		body = styleTitle().Render("rename profile") + "\n\n" +
			m.renameInput.View() + "\n\n" +
			styleMuted().Render("enter: rename   esc: cancel")
	default:
		body = m.list.View() + "\n" +
			styleMuted().Render("enter: edit   a: add   d: delete   J/K: move   v: preview   r: rename   q: quit")
	}

	status := m.status
	if status != "" {
		if m.statusIsErr {
			status = styleError().Render(status)
		} else {
			status = styleAccent().Render(status)
		}
		body += "\n" + status
	}
	return lipgloss.NewStyle().Padding(1, 1).Render(body)
}
