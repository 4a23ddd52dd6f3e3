// Package shell runs a two-player Hasami Shogi match on a terminal.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/hasami"
)

const quitCommand = "quit"

type Shell struct {
	in   *bufio.Scanner
	out  *termenv.Output
	game *hasami.Game
}

func New(in io.Reader, out *termenv.Output, game *hasami.Game) *Shell {
	return &Shell{
		in:   bufio.NewScanner(in),
		out:  out,
		game: game,
	}
}

// Run reads "<from> <to>" lines until the game ends, input runs out or the
// player types quit.
func (that *Shell) Run() error {
	that.printBoard()

	for {
		fmt.Fprintf(that.out, "%s to move> ", that.game.ActivePlayer())

		if !that.in.Scan() {
			fmt.Fprintln(that.out)
			return that.in.Err()
		}

		fields := strings.Fields(that.in.Text())
		if len(fields) == 1 && fields[0] == quitCommand {
			return nil
		}

		if len(fields) != 2 {
			fmt.Fprintln(that.out, "usage: <from> <to>, e.g. i1 e1")
			continue
		}

		if err := that.game.MakeMoveNotation(fields[0], fields[1]); err != nil {
			fmt.Fprintf(that.out, "rejected: %v\n", err)
			continue
		}

		that.printBoard()

		if status := that.game.Status(); status.IsTerminal() {
			fmt.Fprintf(that.out, "%s wins\n", status.Winner())
			return nil
		}
	}
}

func (that *Shell) printBoard() {
	fmt.Fprint(that.out, that.game.Board().Render(that.cell))
	fmt.Fprintf(that.out, "captured: %s %d, %s %d\n",
		hasami.Black, that.game.Captured(hasami.Black),
		hasami.Red, that.game.Captured(hasami.Red))
}

func (that *Shell) cell(player hasami.Player) string {
	style := that.out.String(hasami.Symbol(player))

	switch player {
	case hasami.Black:
		return style.Bold().String()
	case hasami.Red:
		return style.Foreground(that.out.Color("1")).Bold().String()
	default:
		return style.Faint().String()
	}
}
