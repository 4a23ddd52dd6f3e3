package hasami

import "testing"

// gameWith builds an unfinished game holding only the given pieces. Pieces
// missing from the board are counted as captured.
func gameWith(t *testing.T, turn Player, pieces map[string]Player) *Game {
	t.Helper()

	game := &Game{turn: turn, status: StatusUnfinished}
	for token, player := range pieces {
		game.board.set(MustParseLocation(token), player)
	}

	game.captured[Black] = piecesPerPlayer - game.board.Count(Black)
	game.captured[Red] = piecesPerPlayer - game.board.Count(Red)

	return game
}

func loc(token string) Location {
	return MustParseLocation(token)
}
