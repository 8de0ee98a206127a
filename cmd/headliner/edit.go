package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/preview"
	"github.com/alexisbeaulieu97/headliner/internal/tui/editor"
)

var runEditor = func(cmd *cobra.Command, model editor.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()), tea.WithInput(cmd.InOrStdin())).Run()
	return err
}

func newEditCmd(root *rootFlags) *cobra.Command {
	session := &sessionFlags{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the headline interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTerminal(cmd.OutOrStdout()) {
				return newCommandError("edit", "starting the editor", fmt.Errorf("stdout is not a terminal"), "Run headliner edit from an interactive terminal.")
			}

			sess, err := loadSession(cmd, root, session, "edit")
			if err != nil {
				return err
			}

			model := editor.NewModel(sess.svc, preview.New(preview.Options{}))
			if err := runEditor(cmd, model); err != nil {
				return newCommandError("edit", "running the editor", err, "Retry with --verbose to see the logs.")
			}
			return nil
		},
	}

	addSessionFlags(cmd, session)
	addOutputFlag(cmd, session)

	return cmd
}
