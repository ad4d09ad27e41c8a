package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game - a human-vs-bot session. It lives in storage only while it is ongoing.
type Game struct {
	ID        string  `json:"id"`
	Board     Board   `json:"board"`
	Status    string  `json:"status"`
	Outcome   Outcome `json:"outcome"`
	HumanMark Player  `json:"human_mark"`
	BotMark   Player  `json:"bot_mark"`
	Turn      Player  `json:"player_turn,omitempty"`
	// LastBotAction is nil until the bot has moved at least once.
	LastBotAction *Action `json:"last_bot_action,omitempty"`
}

func NewGame(id string, humanMark Player) *Game {
	return &Game{
		ID:        id,
		Board:     InitialState(),
		Status:    StatusOngoing,
		Outcome:   InProgress,
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
		Turn:      PlayerX,
	}
}

// UpdateGameState - records the outcome of the current board and whose turn is next.
func (that *Game) UpdateGameState(outcome Outcome, next Player) {
	that.Outcome = outcome

	if outcome == InProgress {
		that.Status = StatusOngoing
		that.Turn = next
		return
	}

	that.Status = StatusFinished
	that.Turn = 0
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}
