// Package fonts maps symbolic font-family keys to concrete font strings.
package fonts

import "sort"

// Table maps a symbolic family key (e.g. "Roboto") to a concrete font string
// (e.g. "'Roboto', sans-serif").
type Table map[string]string

// Default returns the font families offered by the widget out of the box.
func Default() Table {
	return Table{
		"Roboto":   "'Roboto', sans-serif",
		"Poppins":  "'Poppins', sans-serif",
		"OpenSans": "'Open Sans', sans-serif",
		"Inter":    "'Inter', sans-serif",
		"Lato":     "'Lato', sans-serif",
	}
}

// Lookup resolves key. Missing keys and empty font strings both report false.
func (t Table) Lookup(key string) (string, bool) {
	value, ok := t[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Has reports whether key resolves.
func (t Table) Has(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Keys returns the family keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new table containing t overlaid with other.
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
