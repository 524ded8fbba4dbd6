package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/input"
	"github.com/rocketscienceinc/tictactoe-cli/internal/render"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - plays one game reading moves from in and drawing to out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	palette := render.NewPalette(!conf.NoColor)
	handler := input.NewHandler(logger, in, out, palette)
	renderer := render.New(out, palette)
	gameManager := usecase.NewGameManager(logger, handler, renderer)

	game := entity.NewGameWithRandomID()

	if _, err := gameManager.Play(ctx, game); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Received signal, shutting down", "game_id", game.ID)
			fmt.Fprintln(out)
			return nil
		}

		return fmt.Errorf("game %s stopped: %w", game.ID, err)
	}

	return nil
}
