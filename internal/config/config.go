// Package config resolves the presentation constants of the rendered
// terminal prompt. These are pure configuration: they never influence what
// the store persists.
package config

import "os"

// Presentation holds the prompt pieces shown by the TUI header and the web
// preview, e.g. "visitor@portfolio:~$".
type Presentation struct {
	Username string
	Hostname string
	Path     string
	Symbol   string
	Theme    string
}

// Themes lists the theme names the public site understands.
var Themes = []string{"ubuntu", "matrix", "arch"}

func FromEnv() Presentation {
	return Presentation{
		Username: envOr("PORTFOLIO_PROMPT_USER", "visitor"),
		Hostname: envOr("PORTFOLIO_HOSTNAME", "portfolio"),
		Path:     envOr("PORTFOLIO_PATH", "~"),
		Symbol:   envOr("PORTFOLIO_SYMBOL", "$"),
		Theme:    envOr("PORTFOLIO_THEME", Themes[0]),
	}
}

// Prompt renders the shell-style prompt string.
func (p Presentation) Prompt() string {
	return p.Username + "@" + p.Hostname + ":" + p.Path + p.Symbol
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
