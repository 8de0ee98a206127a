package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	headlineapp "github.com/alexisbeaulieu97/headliner/internal/app/headline"
	"github.com/alexisbeaulieu97/headliner/internal/config"
	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	"github.com/alexisbeaulieu97/headliner/internal/logger"
	"github.com/alexisbeaulieu97/headliner/internal/wordspec"
)

// sessionFlags are shared by every command that builds a headline.
type sessionFlags struct {
	configPath string
	text       string
	fontSize   string
	words      string
	perLetter  bool
	direction  string
	effects    []string
	stableIDs  bool
	output     string
}

func addSessionFlags(cmd *cobra.Command, flags *sessionFlags) {
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML project file")
	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "Headline text")
	cmd.Flags().StringVar(&flags.fontSize, "font-size", "", "Font size in pixels (8-200)")
	cmd.Flags().StringVarP(&flags.words, "words", "w", "", `Word overrides, e.g. 'world[highlight,underline] "hello,"[block]'`)
	cmd.Flags().BoolVar(&flags.perLetter, "per-letter", false, "Enable the per-letter animation")
	cmd.Flags().StringVar(&flags.direction, "direction", "", "Gradient direction: to-r, to-l, to-t or to-b")
	cmd.Flags().StringSliceVar(&flags.effects, "effect", nil, "Enable an effect (fadeIn, hoverGlow, perLetter, shadow); repeatable")
	cmd.Flags().BoolVar(&flags.stableIDs, "stable-ids", false, "Issue sequential word ids (w1, w2, ...) for reproducible exports")
}

func addOutputFlag(cmd *cobra.Command, flags *sessionFlags) {
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Artifact path or directory (default: export.path, then \"headline-widget\")")
}

// session bundles the services a command works with.
type session struct {
	cfg *config.Config
	svc *headlineapp.Service
	log *logger.Logger
}

func loadSession(cmd *cobra.Command, root *rootFlags, flags *sessionFlags, operation string) (*session, error) {
	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, newCommandError(operation, fmt.Sprintf("loading configuration %q", flags.configPath), err, "Fix the configuration errors shown above and try again.")
		}
		cfg = parsed
	}

	level := cfg.Log.Level
	if root != nil && root.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.HumanReadable(), Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of trace, debug, info, warn or error for log.level.")
	}

	exportPath := cfg.Export.Path
	if flags.output != "" {
		exportPath = flags.output
	}

	var ids headline.IDGenerator = headline.DefaultIDs
	if flags.stableIDs {
		ids = headline.NewSequentialIDs("w")
	}

	svc := headlineapp.NewService(headlineapp.Options{
		Initial:    cfg.Settings(ids),
		Fonts:      cfg.FontTable(),
		IDs:        ids,
		ExportPath: exportPath,
		Logger:     log,
	})

	if cmd.Flags().Changed("text") {
		svc.SetText(flags.text)
	}

	if cmd.Flags().Changed("font-size") {
		if err := svc.SetFontSizeInput(flags.fontSize); err != nil {
			log.WithFields(map[string]any{
				"input": flags.fontSize,
				"kept":  svc.Settings().FontSize,
				"range": fmt.Sprintf("%d-%d", headline.MinFontSize, headline.MaxFontSize),
			}).Warn("ignoring --font-size")
		}
	}

	if cmd.Flags().Changed("per-letter") {
		if err := svc.SetEffect(headline.EffectPerLetter, flags.perLetter); err != nil {
			return nil, newCommandError(operation, "applying --per-letter", err, "Report this as a bug.")
		}
	}

	if cmd.Flags().Changed("direction") {
		direction, err := headline.ParseDirection(flags.direction)
		if err == nil {
			err = svc.SetGradientDirection(direction)
		}
		if err != nil {
			return nil, newCommandError(operation, fmt.Sprintf("applying --direction %q", flags.direction), err, "Use one of to-r, to-l, to-t or to-b.")
		}
	}

	for _, name := range flags.effects {
		flag, err := headline.ParseEffectFlag(name)
		if err == nil {
			err = svc.SetEffect(flag, true)
		}
		if err != nil {
			return nil, newCommandError(operation, fmt.Sprintf("applying --effect %q", name), err, "Use one of fadeIn, hoverGlow, perLetter or shadow.")
		}
	}

	if strings.TrimSpace(flags.words) != "" {
		overrides, err := wordspec.Parse(flags.words)
		if err != nil {
			return nil, newCommandError(operation, "parsing --words", err, `Write each word optionally followed by flags, e.g. world[highlight,underline] "hello,"[block].`)
		}
		svc.ApplyOverrides(overrides)
	}

	log.WithFields(map[string]any{
		"config":      flags.configPath,
		"words":       len(svc.Settings().StyledWords),
		"font_family": svc.Settings().FontFamily,
	}).Debug("session ready")

	return &session{cfg: cfg, svc: svc, log: log}, nil
}

var stdoutIsTerminal = isTerminal

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func terminalWidth(writer io.Writer) int {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
