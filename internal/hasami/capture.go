package hasami

var lineDirections = [...]direction{left, right, up, down}

// cornerTrap describes one way to capture a corner piece: a piece landing on
// trigger captures an opposing piece on corner while guard holds the mover's piece.
type cornerTrap struct {
	trigger Location
	corner  Location
	guard   Location
}

const lastIndex = BoardSize - 1

var cornerTraps = [...]cornerTrap{
	{trigger: Location{1, 0}, corner: Location{0, 0}, guard: Location{0, 1}},
	{trigger: Location{0, 1}, corner: Location{0, 0}, guard: Location{1, 0}},
	{trigger: Location{0, lastIndex - 1}, corner: Location{0, lastIndex}, guard: Location{1, lastIndex}},
	{trigger: Location{1, lastIndex}, corner: Location{0, lastIndex}, guard: Location{0, lastIndex - 1}},
	{trigger: Location{lastIndex - 1, lastIndex}, corner: Location{lastIndex, lastIndex}, guard: Location{lastIndex, lastIndex - 1}},
	{trigger: Location{lastIndex, lastIndex - 1}, corner: Location{lastIndex, lastIndex}, guard: Location{lastIndex - 1, lastIndex}},
	{trigger: Location{lastIndex, 1}, corner: Location{lastIndex, 0}, guard: Location{lastIndex - 1, 0}},
	{trigger: Location{lastIndex - 1, 0}, corner: Location{lastIndex, 0}, guard: Location{lastIndex, 1}},
}

// resolveCaptures removes every opposing run flanked by the piece on dest,
// in all four directions, and returns the number of pieces removed.
func (that *Game) resolveCaptures(dest Location) int {
	mover := that.board.At(dest)
	opponent := mover.Opponent()

	removed := 0
	for _, dir := range lineDirections {
		removed += that.captureLine(dest, dir, mover, opponent)
	}

	return removed
}

// captureLine walks from dest along dir over opposing pieces. The run is
// captured only when it ends on one of mover's pieces.
func (that *Game) captureLine(dest Location, dir direction, mover, opponent Player) int {
	run := 0
	end := dest.step(dir)
	for end.OnBoard() && that.board.At(end) == opponent {
		run++
		end = end.step(dir)
	}

	if run == 0 || !end.OnBoard() || that.board.At(end) != mover {
		return 0
	}

	for cur := dest.step(dir); cur != end; cur = cur.step(dir) {
		that.board.set(cur, NoPlayer)
	}
	that.captured[opponent] += run

	return run
}

// checkCornerCapture removes an opposing corner piece trapped by the piece on dest.
func (that *Game) checkCornerCapture(dest Location) int {
	mover := that.board.At(dest)
	opponent := mover.Opponent()

	removed := 0
	for _, trap := range cornerTraps {
		if trap.trigger != dest {
			continue
		}

		if that.board.At(trap.corner) == opponent && that.board.At(trap.guard) == mover {
			that.board.set(trap.corner, NoPlayer)
			that.captured[opponent]++
			removed++
		}
	}

	return removed
}
