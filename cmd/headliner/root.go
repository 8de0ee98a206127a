package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "headliner",
		Short:         "Headliner styles headlines and exports them as widget settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newComposeCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newFontsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
