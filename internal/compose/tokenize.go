package compose

import (
	"unicode"
	"unicode/utf8"
)

// Token is a maximal run of either whitespace or non-whitespace runes.
type Token struct {
	Text       string
	Whitespace bool
}

// Tokenize splits text into alternating word and whitespace runs. Joining the
// token texts in order reproduces text exactly; no token is empty.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	var tokens []Token
	start := 0
	first, _ := utf8.DecodeRuneInString(text)
	inSpace := isSpace(first)

	for i, r := range text {
		space := isSpace(r)
		if space == inSpace {
			continue
		}
		tokens = append(tokens, Token{Text: text[start:i], Whitespace: inSpace})
		start = i
		inSpace = space
	}
	tokens = append(tokens, Token{Text: text[start:], Whitespace: inSpace})

	return tokens
}

// isSpace matches the whitespace class used by browser text splitting:
// Unicode White_Space minus NEL, plus the byte order mark.
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}
