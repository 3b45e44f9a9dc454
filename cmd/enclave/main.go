package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/freeeve/enclave/internal/cli"
	"github.com/freeeve/enclave/internal/config"
	"github.com/freeeve/enclave/internal/game"
	"github.com/freeeve/enclave/internal/logger"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	closeLog := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Dev: cfg.Dev})
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	id := logger.NewGameID()
	ctx = logger.WithGameID(ctx, id)
	l := logger.ForGame(ctx)

	// The first interrupt stops the game before the next turn resolves; a
	// second one falls through to the default handler.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		signal.Stop(quit)
		l.Warn().Msg("Interrupted, the game ends before the next turn resolves")
		cancel()
	}()

	session := game.NewSession(id)
	if cfg.Setup == config.SetupStarter {
		if err := session.SetupStarter(); err != nil {
			l.Error().Err(err).Msg("Starter setup failed")
			return err
		}
	}
	l.Info().Str("setup", cfg.Setup).Str("lang", cfg.Lang).Msg("Game created")

	runner := cli.NewRunner(session, os.Stdin, os.Stdout, cli.Options{
		Lang:        cfg.Lang,
		ClearScreen: cfg.ClearScreen,
	})
	outcome, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.Info().Int("turn", session.Turn()).Msg("Input closed, game abandoned")
			return nil
		}
		l.Error().Err(err).Int("turn", session.Turn()).Msg("Game aborted")
		return err
	}
	l.Info().Str("outcome", outcome.String()).Int("turn", session.Turn()).Msg("Game finished")
	return nil
}
