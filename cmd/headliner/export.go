package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/export"
)

type exportOptions struct {
	stdout    bool
	clipboard bool
	toFile    bool
}

var clipboardWriter = clipboard.WriteAll

func newExportCmd(root *rootFlags) *cobra.Command {
	session := &sessionFlags{}
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the headline settings as a JSON artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, root, session, "export")
			if err != nil {
				return err
			}
			opts.toFile = cmd.Flags().Changed("output") || !(opts.stdout || opts.clipboard)
			return runExport(cmd, sess, opts)
		},
	}

	addSessionFlags(cmd, session)
	addOutputFlag(cmd, session)
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write the artifact to stdout instead of a file")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "Copy the artifact to the system clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, sess *session, opts *exportOptions) error {
	data, err := sess.svc.Export()
	if err != nil {
		return newCommandError("export", "serializing headline settings", err, "Pick a family listed by 'headliner fonts' or declare it under fonts in the config file.")
	}

	if opts.stdout {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if opts.clipboard {
		if err := clipboardWriter(string(data)); err != nil {
			return newCommandError("export", "copying to clipboard", err, "Install xclip, xsel or wl-clipboard, or use --stdout.")
		}
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "✓ Copied headline settings to the clipboard")
	}

	if !opts.toFile {
		return nil
	}

	written, err := sess.svc.ExportTo("")
	if err != nil {
		return newCommandError("export", fmt.Sprintf("writing %q", export.ResolvePath(sess.svc.ExportPath())), err, "Check that the destination directory is writable.")
	}

	out := cmd.OutOrStdout()
	if opts.stdout {
		out = cmd.ErrOrStderr()
	}
	_, _ = fmt.Fprintf(out, "✓ Exported headline to %s\n", written)
	return nil
}
