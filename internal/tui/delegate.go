package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/oliCHECK24/terminal-portfolio/internal/model"
)

// optionItem adapts one option record for the bubbles list.
type optionItem struct {
	opt model.Option
}

func (it optionItem) Title() string       { return it.opt.Label }
func (it optionItem) FilterValue() string { return it.opt.Label }

type optionDelegate struct {
	title         lipgloss.Style
	about         lipgloss.Style
	selectedTitle lipgloss.Style
	selectedAbout lipgloss.Style
}

func newOptionDelegate() optionDelegate {
	return optionDelegate{
		title:         lipgloss.NewStyle().Foreground(colorTitleFg),
		about:         styleMuted(),
		selectedTitle: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
		selectedAbout: styleMuted().Background(colorSelectedBg),
	}
}

func (d optionDelegate) Height() int  { return 2 }
func (d optionDelegate) Spacing() int { return 1 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	it, ok := item.(optionItem)
	if !ok {
		fmt.Fprint(w, "")
		return
	}

	title := it.opt.Label
	if n := len(it.opt.Data); n > 0 {
		title += styleAccent().Render(fmt.Sprintf("  [%d]", n))
	}
	about := it.opt.About

	titleStyle, aboutStyle := d.title, d.about
	if index == m.Index() {
		titleStyle, aboutStyle = d.selectedTitle, d.selectedAbout
	}

	fmt.Fprint(w, titleStyle.Render(fitLine(title, contentW)))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, aboutStyle.Render(fitLine(about, contentW)))
}

// fitLine pads or cuts a line to exactly w cells, ANSI-aware.
func fitLine(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	sw := xansi.StringWidth(s)
	if sw < w {
		return s + strings.Repeat(" ", w-sw)
	}
	if sw > w {
		return xansi.Cut(s, 0, w)
	}
	return s
}
