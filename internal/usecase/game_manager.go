package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type moveSource interface {
	GetPlayerMove(ctx context.Context, board entity.Board, turn int) (entity.Move, error)
}

type boardRenderer interface {
	DisplayBoard(board entity.Board)
	AnnounceOutcome(outcome entity.Outcome)
}

// GameManager drives a single game from an empty board to its outcome.
type GameManager struct {
	logger   *slog.Logger
	moves    moveSource
	renderer boardRenderer
}

func NewGameManager(logger *slog.Logger, moves moveSource, renderer boardRenderer) *GameManager {
	return &GameManager{
		logger:   logger,
		moves:    moves,
		renderer: renderer,
	}
}

// Play runs the turn loop on game until the board reaches a terminal condition.
func (that *GameManager) Play(ctx context.Context, game *entity.Game) (entity.Outcome, error) {
	log := that.logger.With("component", "game", "game_id", game.ID)
	log.Info("game started")

	for !tictactoe.IsGameOver(game.Board) {
		that.renderer.DisplayBoard(game.Board)

		move, err := that.moves.GetPlayerMove(ctx, game.Board, game.Turn)
		if err != nil {
			return entity.OutcomeNone, fmt.Errorf("failed to get move for turn %d: %w", game.Turn, err)
		}

		if err = tictactoe.MakeTurn(game, move); err != nil {
			return entity.OutcomeNone, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("move accepted", "player", game.LastMark(), "move", move.String(), "turn", game.Turn)
	}

	that.renderer.DisplayBoard(game.Board)

	outcome := tictactoe.DetermineOutcome(game.Board, game.Turn)
	that.renderer.AnnounceOutcome(outcome)

	log.Info("game finished", "outcome", outcome.String(), "turns", game.Turn)

	return outcome, nil
}
