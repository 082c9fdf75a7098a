// Package editor holds the authoritative in-memory list state behind the
// profile editing surfaces (TUI, CLI). Every committed mutation produces a
// new options snapshot and persists the entire list through the store; on a
// persist failure the prior snapshot is restored so the caller never observes
// unpersisted state as committed.
package editor

import (
	"context"
	"errors"

	"github.com/oliCHECK24/terminal-portfolio/internal/model"
	"github.com/oliCHECK24/terminal-portfolio/internal/store"
)

// List edits the ordered option list of one profile document.
type List struct {
	store    store.Store
	username string

	options []model.Option
	adding  bool
	loading bool
}

// NewList binds an editor to a store and username. An empty username edits
// the default document. The key stays explicit editor state; there is no
// ambient "current username".
func NewList(s store.Store, username string) *List {
	return &List{store: s, username: username, options: []model.Option{}}
}

func (l *List) Username() string { return l.username }
func (l *List) Adding() bool     { return l.adding }
func (l *List) Loading() bool    { return l.loading }

// Options returns the current list snapshot. Callers must treat it as
// read-only; all mutations go through the editor.
func (l *List) Options() []model.Option { return l.options }

func (l *List) Len() int { return len(l.options) }

// Load replaces the list wholesale from the store. Missing and malformed
// documents resolve to the template-with-empty-options fallback, so Load only
// fails on an invalid username.
func (l *List) Load() error {
	l.loading = true
	defer func() { l.loading = false }()

	doc, err := l.store.Load(l.username)
	if err != nil {
		return err
	}
	l.options = doc.Options
	return nil
}

// ToggleEdit flips the transient edit mode of one record. Purely local; the
// flag is never persisted as true. Several records may be in edit mode at
// once; restricting that is a UI choice, not a list invariant.
func (l *List) ToggleEdit(i int) error {
	if i < 0 || i >= len(l.options) {
		return indexErr("toggle edit", i, len(l.options))
	}
	l.options[i].Editing = !l.options[i].Editing
	return nil
}

// BeginAdd enters blank-record mode. The record only joins the list when the
// subsequent Save(isNew=true) commits.
func (l *List) BeginAdd()  { l.adding = true }
func (l *List) CancelAdd() { l.adding = false }

// Save commits one full option record: appended when isNew, otherwise
// replacing the record at i. Partial-field updates are not supported.
func (l *List) Save(ctx context.Context, i int, isNew bool, opt model.Option) error {
	if !isNew && (i < 0 || i >= len(l.options)) {
		return indexErr("save option", i, len(l.options))
	}

	opt.Editing = false
	prev := l.options
	next := model.CloneOptions(l.options)
	if isNew {
		next = append(next, opt)
	} else {
		next[i] = opt
	}

	l.options = next
	wasAdding := l.adding
	if isNew {
		l.adding = false
	}
	if err := l.commit(ctx, "option.save", map[string]any{"index": i, "new": isNew, "label": opt.Label}); err != nil {
		l.options = prev
		l.adding = wasAdding
		return err
	}
	return nil
}

// Delete removes the record at i and persists the shortened list.
func (l *List) Delete(ctx context.Context, i int) error {
	if i < 0 || i >= len(l.options) {
		return indexErr("delete option", i, len(l.options))
	}
	prev := l.options
	next := model.CloneOptions(l.options)
	next = append(next[:i], next[i+1:]...)

	l.options = next
	if err := l.commit(ctx, "option.delete", map[string]any{"index": i}); err != nil {
		l.options = prev
		return err
	}
	return nil
}

// Reorder removes the record at from and reinserts it at to (splice-move:
// when to > from the removal shifts the landing position, matching raw
// drag-and-drop drop targets and move-up/move-down alike).
func (l *List) Reorder(ctx context.Context, from, to int) error {
	n := len(l.options)
	if from < 0 || from >= n {
		return indexErr("reorder option", from, n)
	}
	if to < 0 || to >= n {
		return indexErr("reorder option", to, n)
	}

	prev := l.options
	next := model.CloneOptions(l.options)
	moved := next[from]
	next = append(next[:from], next[from+1:]...)
	next = append(next[:to], append([]model.Option{moved}, next[to:]...)...)

	l.options = next
	if err := l.commit(ctx, "option.move", map[string]any{"from": from, "to": to}); err != nil {
		l.options = prev
		return err
	}
	return nil
}

// Rename moves the bound profile to newUsername. The editor only adopts the
// new key after the store confirms the move, so a failed rename leaves both
// the files and the editor state untouched.
func (l *List) Rename(ctx context.Context, newUsername string) error {
	if l.username == "" {
		return errors.New("the default profile cannot be renamed")
	}
	if err := l.store.Rename(l.username, newUsername); err != nil {
		return err
	}
	old := l.username
	l.username = newUsername
	_ = l.store.AppendEvent(ctx, newUsername, "profile.rename", map[string]any{"from": old})
	return nil
}

func (l *List) commit(ctx context.Context, eventType string, payload map[string]any) error {
	if err := l.store.Save(l.options, l.username); err != nil {
		return err
	}
	// History is advisory; the save above is the durable commit.
	_ = l.store.AppendEvent(ctx, l.username, eventType, payload)
	return nil
}
