package hasami

import (
	"fmt"
	"strings"
)

const (
	BoardSize = 9

	rowLetters = "abcdefghi"
	colDigits  = "123456789"
)

// Location is a zero-based square: Row 0 is rank 'a', Col 0 is file '1'.
type Location struct {
	Row int
	Col int
}

// ParseLocation converts notation such as "e5" into a Location.
func ParseLocation(token string) (Location, error) {
	if len(token) != 2 {
		return Location{}, fmt.Errorf("%w: %q must be a letter a-i followed by a digit 1-9", ErrInvalidLocation, token)
	}

	row := strings.IndexByte(rowLetters, token[0])
	col := strings.IndexByte(colDigits, token[1])
	if row < 0 || col < 0 {
		return Location{}, fmt.Errorf("%w: %q must be a letter a-i followed by a digit 1-9", ErrInvalidLocation, token)
	}

	return Location{Row: row, Col: col}, nil
}

// MustParseLocation is ParseLocation for literals known to be valid.
func MustParseLocation(token string) Location {
	location, err := ParseLocation(token)
	if err != nil {
		panic(err)
	}

	return location
}

func (that Location) String() string {
	if !that.OnBoard() {
		return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
	}

	return string([]byte{rowLetters[that.Row], colDigits[that.Col]})
}

func (that Location) OnBoard() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

type direction struct {
	dRow int
	dCol int
}

var (
	left  = direction{dRow: 0, dCol: -1}
	right = direction{dRow: 0, dCol: 1}
	up    = direction{dRow: -1, dCol: 0}
	down  = direction{dRow: 1, dCol: 0}
)

func (that Location) step(dir direction) Location {
	return Location{Row: that.Row + dir.dRow, Col: that.Col + dir.dCol}
}

// directionOf expects from and to to share a row or a column.
func directionOf(from, to Location) direction {
	switch {
	case to.Col < from.Col:
		return left
	case to.Col > from.Col:
		return right
	case to.Row < from.Row:
		return up
	default:
		return down
	}
}
