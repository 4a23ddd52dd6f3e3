package hasami

import "strings"

// Board is the 9x9 grid stored row-major; column access is computed from the index.
type Board [BoardSize * BoardSize]Player

// NewBoard returns the starting position: Red fills rank 'a', Black fills rank 'i'.
func NewBoard() Board {
	var board Board

	for col := 0; col < BoardSize; col++ {
		board.set(Location{Row: 0, Col: col}, Red)
		board.set(Location{Row: BoardSize - 1, Col: col}, Black)
	}

	return board
}

// At returns NoPlayer for squares outside the board.
func (that *Board) At(location Location) Player {
	if !location.OnBoard() {
		return NoPlayer
	}

	return that[location.Row*BoardSize+location.Col]
}

func (that *Board) set(location Location, player Player) {
	that[location.Row*BoardSize+location.Col] = player
}

// Count returns how many squares hold player's pieces.
func (that *Board) Count(player Player) int {
	count := 0
	for _, cell := range that {
		if cell == player {
			count++
		}
	}

	return count
}

// Rows returns the grid as rows, for rendering and serialisation.
func (that *Board) Rows() [BoardSize][BoardSize]Player {
	var rows [BoardSize][BoardSize]Player

	for i, cell := range that {
		rows[i/BoardSize][i%BoardSize] = cell
	}

	return rows
}

func boardFromRows(rows [BoardSize][BoardSize]Player) Board {
	var board Board

	for row := range rows {
		for col, cell := range rows[row] {
			board.set(Location{Row: row, Col: col}, cell)
		}
	}

	return board
}

// Symbol is the one-letter form used in text renderings.
func Symbol(player Player) string {
	switch player {
	case Black:
		return "B"
	case Red:
		return "R"
	default:
		return "."
	}
}

// String renders the board with file digits across the top and rank letters down the side.
func (that Board) String() string {
	return that.Render(Symbol)
}

// Render is String with a caller-provided cell renderer, e.g. to colour pieces.
func (that Board) Render(cell func(Player) string) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(colDigits[col])
	}
	sb.WriteByte('\n')

	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(rowLetters[row])
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(cell(that.At(Location{Row: row, Col: col})))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
