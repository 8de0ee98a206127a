package headline

import "strings"

// Direction is the symbolic gradient direction chosen by the user.
type Direction string

const (
	DirectionRight  Direction = "to-r"
	DirectionLeft   Direction = "to-l"
	DirectionTop    Direction = "to-t"
	DirectionBottom Direction = "to-b"
)

// Directions lists every supported direction in control order.
var Directions = []Direction{DirectionRight, DirectionLeft, DirectionTop, DirectionBottom}

// Valid reports whether d is one of the supported directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionRight, DirectionLeft, DirectionTop, DirectionBottom:
		return true
	default:
		return false
	}
}

// ParseDirection converts user input into a Direction, failing fast on unknown values.
func ParseDirection(value string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(value)))
	if !d.Valid() {
		return "", newDirectionError(value)
	}
	return d, nil
}
