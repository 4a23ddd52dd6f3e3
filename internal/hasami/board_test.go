package hasami

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: Red holds rank a, Black holds rank i and the rest is empty
	for col := 0; col < BoardSize; col++ {
		assert.Equal(t, Red, board.At(Location{Row: 0, Col: col}))
		assert.Equal(t, Black, board.At(Location{Row: BoardSize - 1, Col: col}))
	}

	assert.Equal(t, 9, board.Count(Red))
	assert.Equal(t, 9, board.Count(Black))
	assert.Equal(t, 63, board.Count(NoPlayer))
}

func TestBoard_At(t *testing.T) {
	board := NewBoard()

	assert.Equal(t, NoPlayer, board.At(Location{Row: -1, Col: 0}))
	assert.Equal(t, NoPlayer, board.At(Location{Row: 0, Col: BoardSize}))
}

func TestBoard_Rows(t *testing.T) {
	// Given: a board with a single piece in the middle
	var board Board
	board.set(loc("e7"), Black)

	// When: the board is converted to rows and back
	rows := board.Rows()

	// Then: the piece sits at its row and column
	assert.Equal(t, Black, rows[4][6])
	assert.Equal(t, board, boardFromRows(rows))
}

func TestBoard_String(t *testing.T) {
	// Given: the starting board
	board := NewBoard()

	// When: rendering it as text
	text := board.String()

	// Then: ranks are labelled with letters and files with digits
	expected := "  1 2 3 4 5 6 7 8 9\n" +
		"a R R R R R R R R R\n" +
		"b . . . . . . . . .\n" +
		"c . . . . . . . . .\n" +
		"d . . . . . . . . .\n" +
		"e . . . . . . . . .\n" +
		"f . . . . . . . . .\n" +
		"g . . . . . . . . .\n" +
		"h . . . . . . . . .\n" +
		"i B B B B B B B B B\n"
	assert.Equal(t, expected, text)
}
