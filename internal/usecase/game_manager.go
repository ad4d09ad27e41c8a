package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

type solver interface {
	BestAction(ctx context.Context, board entity.Board) (entity.Action, int, error)
}

type gameRecorder interface {
	GameFinished(outcome string)
}

// turnLockStripes - turns on games hashing to the same stripe are serialized.
const turnLockStripes = 64

type GameManager struct {
	logger *slog.Logger

	turnLocks [turnLockStripes]sync.Mutex

	gameRepo gameRepo
	bot      botService
	solver   solver
	recorder gameRecorder
}

// NewGameManager - recorder may be nil.
func NewGameManager(logger *slog.Logger, gameRepo gameRepo, bot botService, solver solver, recorder gameRecorder) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		bot:      bot,
		solver:   solver,
		recorder: recorder,
	}
}

// NewGame - starts a game for a human playing humanMark. When the bot holds X it opens.
func (that *GameManager) NewGame(ctx context.Context, humanMark entity.Player) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), humanMark)

	if game.IsBotTurn() {
		if err := that.bot.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "humanMark", humanMark.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human's action and the bot's reply. A finished game is removed from
// storage and returned with its final board.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, action entity.Action) (*entity.Game, error) {
	unlock := that.lockGame(gameID)
	defer unlock()

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeTurn(game, game.HumanMark, action); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.bot.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.finishGame(ctx, game)

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

// Analyze - the full engine view of a board; BestAction is set only on non-terminal boards.
func (that *GameManager) Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error) {
	analysis := &entity.Analysis{
		Board:        board,
		Terminal:     tictactoe.IsTerminal(board),
		Outcome:      tictactoe.OutcomeOf(board),
		LegalActions: tictactoe.LegalActions(board),
	}

	if analysis.Terminal {
		return analysis, nil
	}

	analysis.Player = tictactoe.CurrentPlayer(board)

	action, value, err := that.solver.BestAction(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze board: %w", err)
	}

	analysis.BestAction = &action
	analysis.Value = &value

	return analysis, nil
}

// lockGame - holds the game's stripe from read to write of a turn in this process.
func (that *GameManager) lockGame(gameID string) func() {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(gameID))

	mu := &that.turnLocks[hash.Sum32()%turnLockStripes]
	mu.Lock()

	return mu.Unlock
}

// finishGame - finished games are not kept.
func (that *GameManager) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	if that.recorder != nil {
		that.recorder.GameFinished(game.Outcome.String())
	}

	log.Info("game finished", "outcome", game.Outcome.String())
}
