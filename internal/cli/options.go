package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oliCHECK24/terminal-portfolio/internal/model"
)

func newOptionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Edit the ordered section list of a profile",
	}
	cmd.AddCommand(newOptionsListCmd(app))
	cmd.AddCommand(newOptionsAddCmd(app))
	cmd.AddCommand(newOptionsSetCmd(app))
	cmd.AddCommand(newOptionsDeleteCmd(app))
	cmd.AddCommand(newOptionsMoveCmd(app))
	return cmd
}

func newOptionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List options in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, _, err := loadEditor(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ed.Options()})
		},
	}
}

// optionFlags collects the full-record fields shared by add and set. Saves
// always replace the whole record; there are no partial-field updates.
type optionFlags struct {
	label string
	about string
	value string
	data  []string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.label, "label", "", "Section label (required)")
	cmd.Flags().StringVar(&f.about, "about", "", "Section about line (required)")
	cmd.Flags().StringVar(&f.value, "value", "", "Section long-form text (required)")
	cmd.Flags().StringArrayVar(&f.data, "data", nil, "Sub-item row as label|value[|url] (repeatable, ordered)")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("about")
	_ = cmd.MarkFlagRequired("value")
}

func (f *optionFlags) option() (model.Option, error) {
	opt := model.Option{
		Label: f.label,
		About: f.about,
		Value: f.value,
	}
	if strings.TrimSpace(opt.Label) == "" {
		return model.Option{}, errors.New("label must not be empty")
	}
	for _, raw := range f.data {
		item, err := parseSubItem(raw)
		if err != nil {
			return model.Option{}, err
		}
		opt.Data = append(opt.Data, item)
	}
	return opt, nil
}

func parseSubItem(raw string) (model.SubItem, error) {
	parts := strings.SplitN(raw, "|", 3)
	if len(parts) < 2 {
		return model.SubItem{}, fmt.Errorf("invalid --data %q (expected label|value[|url])", raw)
	}
	item := model.SubItem{Label: parts[0], Value: parts[1]}
	if len(parts) == 3 {
		item.URL = parts[2]
	}
	return item, nil
}

func newOptionsAddCmd(app *App) *cobra.Command {
	var flags optionFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new option and persist the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, _, err := loadEditor(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			opt, err := flags.option()
			if err != nil {
				return writeErr(cmd, err)
			}
			ed.BeginAdd()
			if err := ed.Save(cmd.Context(), 0, true, opt); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": opt, "index": ed.Len() - 1})
		},
	}
	flags.register(cmd)
	return cmd
}

func newOptionsSetCmd(app *App) *cobra.Command {
	var flags optionFlags
	cmd := &cobra.Command{
		Use:   "set <index>",
		Short: "Replace the option at an index and persist the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			ed, _, err := loadEditor(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			opt, err := flags.option()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ed.Save(cmd.Context(), i, false, opt); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": opt, "index": i})
		},
	}
	flags.register(cmd)
	return cmd
}

func newOptionsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the option at an index and persist the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			ed, _, err := loadEditor(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ed.Delete(cmd.Context(), i); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ed.Options()})
		},
	}
}

func newOptionsMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move an option to a new position and persist the list",
		Long:  "Splice-move: the option is removed from <from> and reinserted at <to>, matching drag-and-drop drop targets.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			to, err := parseIndex(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			ed, _, err := loadEditor(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ed.Reorder(cmd.Context(), from, to); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ed.Options()})
		},
	}
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return i, nil
}
