package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/preview"
	"github.com/alexisbeaulieu97/headliner/internal/tui"
)

type previewOptions struct {
	width   int
	animate bool
	noMeta  bool
}

var runPlayer = func(cmd *cobra.Command, model tui.Model) error {
	_, err := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()), tea.WithInput(cmd.InOrStdin())).Run()
	return err
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	session := &sessionFlags{}
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the headline in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, root, session, "preview")
			if err != nil {
				return err
			}
			return runPreview(cmd, sess, opts)
		},
	}

	addSessionFlags(cmd, session)
	cmd.Flags().IntVar(&opts.width, "width", 0, "Wrap width in cells (default: terminal width)")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "Play the entrance and per-letter animations")
	cmd.Flags().BoolVar(&opts.noMeta, "no-meta", false, "Omit the settings summary line")

	return cmd
}

func runPreview(cmd *cobra.Command, sess *session, opts *previewOptions) error {
	frame := sess.svc.Frame()
	if frame.PaintErr != nil {
		return newCommandError("preview", "resolving the headline paint", frame.PaintErr, "Use one of to-r, to-l, to-t or to-b for gradient_direction.")
	}
	if frame.FontString == "" {
		sess.log.With("font_family", frame.Settings.FontFamily).Warn("font family is not in the font table")
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	sess.log.Debugf("rendering preview at width %d (animate=%t)", width, opts.animate)
	renderer := preview.New(preview.Options{Width: width})
	in := preview.FromFrame(frame)

	if opts.animate && stdoutIsTerminal(cmd.OutOrStdout()) {
		return runPlayer(cmd, tui.NewModel(in, renderer))
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, renderer.Render(in))
	if !opts.noMeta {
		_, _ = fmt.Fprintln(out, renderer.Meta(in))
	}

	return nil
}
