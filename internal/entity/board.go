package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

// Player - the side to move, identified by the mark it places.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

func (that Player) Mark() Cell {
	if that == PlayerO {
		return MarkO
	}
	return MarkX
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return that.Mark().String()
}

func (that Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Player) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal player: %w", err)
	}

	player, err := ParsePlayer(raw)
	if err != nil {
		return err
	}

	*that = player
	return nil
}

// ParsePlayer - accepts "X" or "O" in any case.
func ParsePlayer(raw string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidPayload, raw)
	}
}

// Action - a 0-indexed (row, column) coordinate.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Index - row-major cell index 0..8.
func (that Action) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Action) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func ActionFromIndex(cell int) Action {
	return Action{Row: cell / BoardSize, Col: cell % BoardSize}
}

type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (that Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Outcome) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal outcome: %w", err)
	}

	for _, outcome := range []Outcome{InProgress, XWins, OWins, Draw} {
		if outcome.String() == raw {
			*that = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", raw)
}

// Board is a value type: assignment copies every cell, so a derived board never
// aliases the board it was derived from.
type Board [BoardSize][BoardSize]Cell

// InitialState - returns the empty starting board.
func InitialState() Board {
	return Board{}
}

func (that Board) At(action Action) Cell {
	return that[action.Row][action.Col]
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}
	return count
}

// String - nine characters in row-major order, e.g. "XX.OO....".
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)
	for _, row := range that {
		for _, c := range row {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// Pretty - multi-line rendering used by the console driver.
func (that Board) Pretty() string {
	var sb strings.Builder
	sb.WriteString("   0 1 2\n")
	for i, row := range that {
		fmt.Fprintf(&sb, "%d ", i)
		for _, c := range row {
			sb.WriteString(" ")
			sb.WriteString(c.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := ParseBoard(raw)
	if err != nil {
		return err
	}

	*that = board
	return nil
}

// ParseBoard - parses the String form. Separators "/", "|" and whitespace are ignored;
// ".", "-" and "_" mean an empty cell.
func ParseBoard(raw string) (Board, error) {
	var board Board

	cells := make([]Cell, 0, BoardSize*BoardSize)
	for _, r := range raw {
		switch r {
		case '/', '\n', '\t', ' ', '|':
			continue
		case '.', '-', '_':
			cells = append(cells, Empty)
		case 'X', 'x':
			cells = append(cells, MarkX)
		case 'O', 'o':
			cells = append(cells, MarkO)
		default:
			return board, fmt.Errorf("%w: unexpected character %q", apperror.ErrInvalidBoard, r)
		}
	}

	if len(cells) != BoardSize*BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize*BoardSize, len(cells))
	}

	for i, c := range cells {
		board[i/BoardSize][i%BoardSize] = c
	}

	if diff := board.Count(MarkX) - board.Count(MarkO); diff < 0 || diff > 1 {
		return Board{}, fmt.Errorf("%w: mark counts X=%d O=%d", apperror.ErrInvalidBoard, board.Count(MarkX), board.Count(MarkO))
	}

	return board, nil
}
