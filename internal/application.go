package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mancala/internal/config"
	"github.com/rocketscienceinc/mancala/internal/entity"
	"github.com/rocketscienceinc/mancala/internal/mancala"
	"github.com/rocketscienceinc/mancala/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run plays one game between the two configured players over in and out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	rules, err := mancala.NewRules(conf.Variant)
	if err != nil {
		return fmt.Errorf("could not select rules: %w", err)
	}

	controller := mancala.NewGameController(logger, rules, mancala.WithStonesPerPit(conf.StonesPerPit))

	one := entity.NewPlayer(conf.Players.One)
	two := entity.NewPlayer(conf.Players.Two)
	if err = controller.RegisterPlayers(one, two); err != nil {
		return fmt.Errorf("could not register players: %w", err)
	}

	log.Info("Starting game", "game", controller.ID(), "variant", rules.Name())

	server := console.New(logger, controller, in, out, !conf.NoColor)
	if err = server.Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}
