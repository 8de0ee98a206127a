// Package wordspec parses compact word override expressions such as
//
//	world[highlight,underline] "hello,"[block] plain
//
// Each entry names a word (bare or quoted) and optionally the style flags it
// should carry.
package wordspec

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/alexisbeaulieu97/headliner/internal/domain/headline"
	headlinererrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

var (
	specLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Punct", Pattern: `[\[\],]`},
		{Name: "Word", Pattern: `[^\s\[\],"]+`},
	})

	specParser = participle.MustBuild[Expression](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
)

// Expression is the root AST node of an override expression.
type Expression struct {
	Entries []*Entry `parser:"@@*"`
}

// Entry is a single word with its optional flag list.
type Entry struct {
	Pos   lexer.Position `parser:""`
	Word  string         `parser:"( @String | @Word )"`
	Flags []string       `parser:"( '[' ( @Word ( ',' @Word )* )? ']' )?"`
}

// Override is a validated entry ready to apply.
type Override struct {
	Word   string
	Fields []headline.StyleField
}

// Parse parses and validates expr. An empty or blank expression yields no overrides.
func Parse(expr string) ([]Override, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	ast, err := specParser.ParseString("", expr)
	if err != nil {
		return nil, convertParseError(err)
	}

	overrides := make([]Override, 0, len(ast.Entries))
	for _, entry := range ast.Entries {
		if headline.NormalizeWord(entry.Word) == "" {
			return nil, headlinererrors.NewWordSpecError(entry.Pos.Column, "word must not be blank", nil)
		}

		override := Override{Word: entry.Word}
		for _, flag := range entry.Flags {
			field, err := headline.ParseStyleField(flag)
			if err != nil {
				return nil, headlinererrors.NewWordSpecError(entry.Pos.Column, "unknown style "+`"`+flag+`"`+" (use highlight, underline or block)", err)
			}
			override.Fields = append(override.Fields, field)
		}
		overrides = append(overrides, override)
	}

	return overrides, nil
}

// Apply adds every override to s and switches its listed fields on. Fields
// already on stay on; words already present keep their id.
func Apply(s headline.HeadlineSettings, overrides []Override, ids headline.IDGenerator) headline.HeadlineSettings {
	for _, override := range overrides {
		s = headline.AddWord(s, override.Word, ids)
		word, ok := headline.FindWordByText(s, override.Word)
		if !ok {
			continue
		}
		for _, field := range override.Fields {
			s = headline.SetStyle(s, word.ID, field, true)
		}
	}
	return s
}

func convertParseError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return headlinererrors.NewWordSpecError(perr.Position().Column, perr.Message(), err)
	}
	return headlinererrors.NewWordSpecError(0, err.Error(), err)
}
