package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	headlineapp "github.com/alexisbeaulieu97/headliner/internal/app/headline"
	"github.com/alexisbeaulieu97/headliner/internal/compose"
	"github.com/alexisbeaulieu97/headliner/internal/paint"
)

type composeOptions struct {
	json bool
}

// composeOutput is the machine-readable render plan for an animation runtime.
type composeOutput struct {
	Text       string            `json:"text"`
	FontString string            `json:"fontFamily"`
	FontSize   int               `json:"fontSize"`
	FontWeight int               `json:"fontWeight"`
	Paint      paint.Descriptor  `json:"paint"`
	CSS        map[string]string `json:"css"`
	Motion     compose.Motion    `json:"motion"`
	Segments   []compose.Segment `json:"segments"`
}

func newComposeCmd(root *rootFlags) *cobra.Command {
	session := &sessionFlags{}
	opts := &composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the composed segments and animation descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, root, session, "compose")
			if err != nil {
				return err
			}
			return runCompose(cmd, sess, opts)
		},
	}

	addSessionFlags(cmd, session)
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

func runCompose(cmd *cobra.Command, sess *session, opts *composeOptions) error {
	frame := sess.svc.Frame()
	if frame.PaintErr != nil {
		return newCommandError("compose", "resolving the headline paint", frame.PaintErr, "Use one of to-r, to-l, to-t or to-b for gradient_direction.")
	}

	if opts.json {
		return outputComposeJSON(cmd.OutOrStdout(), frame)
	}

	out := cmd.OutOrStdout()
	for _, segment := range frame.Segments {
		if !segment.IsWord() {
			_, _ = fmt.Fprintf(out, "   ·  %q\n", segment.Text)
			continue
		}

		line := fmt.Sprintf("%3d  %q", segment.WordIndex, segment.Text)
		if segment.Style.Any() {
			line += " [" + styleFlags(segment.Style) + "]"
		}
		if segment.OverrideID != "" {
			line += " (" + segment.OverrideID + ")"
		}
		_, _ = fmt.Fprintln(out, line)

		if len(segment.Letters) > 0 {
			timings := make([]string, 0, len(segment.Letters))
			for _, letter := range segment.Letters {
				timings = append(timings, fmt.Sprintf("%s@%.2fs", letter.Char, letter.Animation.Delay))
			}
			_, _ = fmt.Fprintf(out, "     %s\n", strings.Join(timings, " "))
		}
	}

	if entrance := frame.Motion.Entrance; entrance != nil {
		_, _ = fmt.Fprintf(out, "entrance: fade in over %.2fs\n", entrance.Duration)
	}
	if hover := frame.Motion.Hover; hover != nil {
		_, _ = fmt.Fprintf(out, "hover: scale %.2f, glow %s\n", hover.Scale, strings.Join(hover.TextShadow, ", "))
	}
	if frame.Motion.DropShadow {
		_, _ = fmt.Fprintln(out, "shadow: drop shadow")
	}

	return nil
}

func outputComposeJSON(w io.Writer, frame headlineapp.Frame) error {
	segments := frame.Segments
	if segments == nil {
		segments = []compose.Segment{}
	}

	payload := composeOutput{
		Text:       frame.Settings.Text,
		FontString: frame.FontString,
		FontSize:   frame.Settings.FontSize,
		FontWeight: frame.Settings.FontWeight,
		Paint:      frame.Paint,
		CSS:        frame.Paint.CSS(),
		Motion:     frame.Motion,
		Segments:   segments,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func styleFlags(style compose.Style) string {
	var flags []string
	if style.Highlight {
		flags = append(flags, "highlight")
	}
	if style.Underline {
		flags = append(flags, "underline")
	}
	if style.Block {
		flags = append(flags, "block")
	}
	return strings.Join(flags, ",")
}
