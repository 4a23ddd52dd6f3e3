package hasami

import "fmt"

// Player identifies the owner of a piece. NoPlayer marks an empty square.
type Player uint8

const (
	NoPlayer Player = iota
	Black
	Red
)

// Black always moves first.
const FirstPlayer = Black

const (
	blackText = "black"
	redText   = "red"
)

func (that Player) Opponent() Player {
	switch that {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return NoPlayer
	}
}

// String renders the player the way occupant queries report it.
func (that Player) String() string {
	switch that {
	case Black:
		return "BLACK"
	case Red:
		return "RED"
	default:
		return "NONE"
	}
}

func (that Player) MarshalText() ([]byte, error) {
	switch that {
	case Black:
		return []byte(blackText), nil
	case Red:
		return []byte(redText), nil
	case NoPlayer:
		return []byte{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, uint8(that))
	}
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player

	return nil
}

// ParsePlayer accepts the text form produced by MarshalText; the empty string is NoPlayer.
func ParsePlayer(text string) (Player, error) {
	switch text {
	case blackText:
		return Black, nil
	case redText:
		return Red, nil
	case "":
		return NoPlayer, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", ErrUnknownPlayer, text)
	}
}

// Status is the outcome of a game so far.
type Status string

const (
	StatusUnfinished Status = "unfinished"
	StatusBlackWon   Status = "black_won"
	StatusRedWon     Status = "red_won"
)

func (that Status) IsTerminal() bool {
	return that == StatusBlackWon || that == StatusRedWon
}

// Winner returns NoPlayer while the game is unfinished.
func (that Status) Winner() Player {
	switch that {
	case StatusBlackWon:
		return Black
	case StatusRedWon:
		return Red
	default:
		return NoPlayer
	}
}

func (that Status) validate() error {
	switch that {
	case StatusUnfinished, StatusBlackWon, StatusRedWon:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(that))
	}
}
