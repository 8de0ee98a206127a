package headline

// AddWord appends an override for the normalized form of raw. Adding a word
// that is already present, or one that normalizes to nothing, returns s
// unchanged. A nil ids uses DefaultIDs.
func AddWord(s HeadlineSettings, raw string, ids IDGenerator) HeadlineSettings {
	normalized := NormalizeWord(raw)
	if normalized == "" {
		return s
	}
	if _, exists := FindWordByText(s, normalized); exists {
		return s
	}
	if ids == nil {
		ids = DefaultIDs
	}

	next := s.Clone()
	next.StyledWords = append(next.StyledWords, StyledWord{
		ID:   ids.NextID(),
		Text: normalized,
	})
	return next
}

// ToggleStyle flips field on the override identified by id. Unknown ids and
// fields return s unchanged; order of the collection is preserved.
func ToggleStyle(s HeadlineSettings, id string, field StyleField) HeadlineSettings {
	index := indexOfWord(s, id)
	if index < 0 {
		return s
	}
	if _, err := ParseStyleField(string(field)); err != nil {
		return s
	}

	next := s.Clone()
	next.StyledWords[index] = next.StyledWords[index].Toggled(field)
	return next
}

// SetStyle forces field to value, toggling only when the current state differs.
func SetStyle(s HeadlineSettings, id string, field StyleField, value bool) HeadlineSettings {
	word, ok := FindWord(s, id)
	if !ok || word.Flag(field) == value {
		return s
	}
	return ToggleStyle(s, id, field)
}

// RemoveWord drops the override identified by id. Unknown ids return s unchanged.
func RemoveWord(s HeadlineSettings, id string) HeadlineSettings {
	index := indexOfWord(s, id)
	if index < 0 {
		return s
	}

	next := s.Clone()
	next.StyledWords = append(next.StyledWords[:index], next.StyledWords[index+1:]...)
	return next
}

// FindWord returns the override with the given id.
func FindWord(s HeadlineSettings, id string) (StyledWord, bool) {
	index := indexOfWord(s, id)
	if index < 0 {
		return StyledWord{}, false
	}
	return s.StyledWords[index], true
}

// FindWordByText returns the override whose normalized text equals NormalizeWord(text).
func FindWordByText(s HeadlineSettings, text string) (StyledWord, bool) {
	normalized := NormalizeWord(text)
	for _, word := range s.StyledWords {
		if word.Text == normalized {
			return word, true
		}
	}
	return StyledWord{}, false
}

func indexOfWord(s HeadlineSettings, id string) int {
	for i, word := range s.StyledWords {
		if word.ID == id {
			return i
		}
	}
	return -1
}
