package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/config"
)

func newFontsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the available font families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				parsed, err := config.ParseConfig(configPath)
				if err != nil {
					return newCommandError("list fonts", fmt.Sprintf("loading configuration %q", configPath), err, "Fix the configuration errors shown above and try again.")
				}
				cfg = parsed
			}

			table := cfg.FontTable()
			out := cmd.OutOrStdout()
			for _, key := range table.Keys() {
				marker := " "
				if key == cfg.Headline.FontFamily {
					marker = "*"
				}
				font, _ := table.Lookup(key)
				_, _ = fmt.Fprintf(out, "%s %-12s %s\n", marker, key, font)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or TOML project file")

	return cmd
}
