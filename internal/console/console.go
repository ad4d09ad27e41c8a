package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const consoleGameID = "console"

// ErrInputClosed - the input ended before the game did.
var ErrInputClosed = errors.New("input closed")

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

// Console - a human-vs-AI game over a line-oriented reader and writer.
type Console struct {
	logger *slog.Logger
	bot    botService

	in  io.Reader
	out io.Writer

	readOnce sync.Once
	lines    chan string
	readErr  error
}

func New(logger *slog.Logger, bot botService, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		bot:    bot,
		in:     in,
		out:    out,
		lines:  make(chan string),
	}
}

// startReading - scans the input in its own goroutine so a canceled context can interrupt
// a pending prompt. readErr is set before lines is closed.
func (that *Console) startReading() {
	that.readOnce.Do(func() {
		go func() {
			scanner := bufio.NewScanner(that.in)
			for scanner.Scan() {
				that.lines <- scanner.Text()
			}
			that.readErr = scanner.Err()
			close(that.lines)
		}()
	})
}

// Play - runs one game with the human holding humanMark. It returns InProgress with a nil
// error when the human quits.
func (that *Console) Play(ctx context.Context, humanMark entity.Player) (entity.Outcome, error) {
	game := entity.NewGame(consoleGameID, humanMark)

	that.printf("You play %s. Enter moves as \"row col\" (0-2), q to quit.\n", humanMark)

	for game.IsOngoing() {
		if game.IsBotTurn() {
			if err := that.bot.MakeTurn(ctx, game); err != nil {
				return entity.InProgress, fmt.Errorf("bot failed to make turn: %w", err)
			}
			that.printf("AI plays %s\n", game.LastBotAction)
			continue
		}

		that.printf("\n%s", game.Board.Pretty())

		action, quit, err := that.readAction(ctx)
		if err != nil {
			return entity.InProgress, err
		}

		if quit {
			that.printf("Bye.\n")
			return entity.InProgress, nil
		}

		if err = tictactoe.MakeTurn(game, humanMark, action); err != nil {
			if errors.Is(err, apperror.ErrIllegalAction) {
				that.printf("Cell %s is not available.\n", action)
				continue
			}
			return entity.InProgress, err
		}
	}

	that.printf("\n%s%s\n", game.Board.Pretty(), describe(game.Outcome, humanMark))

	that.logger.Debug("console game finished", "outcome", game.Outcome.String())

	return game.Outcome, nil
}

// readAction - prompts until a well-formed line arrives or ctx is done.
func (that *Console) readAction(ctx context.Context) (entity.Action, bool, error) {
	that.startReading()

	for {
		that.printf("Your move: ")

		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			that.printf("\n")
			return entity.Action{}, false, fmt.Errorf("game interrupted: %w", ctx.Err())
		case line, ok = <-that.lines:
		}

		if !ok {
			if that.readErr != nil {
				return entity.Action{}, false, fmt.Errorf("failed to read move: %w", that.readErr)
			}
			return entity.Action{}, false, ErrInputClosed
		}

		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "q") {
			return entity.Action{}, true, nil
		}

		action, err := parseAction(line)
		if err != nil {
			that.printf("%v\n", err)
			continue
		}

		return action, false, nil
	}
}

// parseAction - "row col" or "row,col".
func parseAction(line string) (entity.Action, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Action{}, fmt.Errorf("%w: expected \"row col\", got %q", apperror.ErrInvalidPayload, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Action{}, fmt.Errorf("%w: bad row %q", apperror.ErrInvalidPayload, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Action{}, fmt.Errorf("%w: bad column %q", apperror.ErrInvalidPayload, fields[1])
	}

	return entity.Action{Row: row, Col: col}, nil
}

func describe(outcome entity.Outcome, human entity.Player) string {
	switch {
	case outcome == entity.Draw:
		return "Draw."
	case (outcome == entity.XWins) == (human == entity.PlayerX):
		return "You win."
	default:
		return "AI wins."
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Warn("failed to write output", "error", err)
	}
}
