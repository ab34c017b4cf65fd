package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/hk97/internal/audio"
	"github.com/tomz197/hk97/internal/config"
	"github.com/tomz197/hk97/internal/highscore"
	"github.com/tomz197/hk97/internal/loop"
	loopconfig "github.com/tomz197/hk97/internal/loop/config"
	"golang.org/x/term"
)

const defaultHighScoreFile = "hk97-highscore.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := loopconfig.FromEnv()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to a file or nowhere.
	logOut := io.Discard
	if path := config.GetEnv("HK97_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "hk97",
	})

	store, err := highscore.Open(config.GetEnv("HK97_HIGHSCORE_FILE", defaultHighScoreFile))
	if err != nil {
		return err
	}

	opts := loop.Options{
		Tuning:     tuning,
		Logger:     logger,
		HighScores: store,
	}

	withAudio, err := config.GetEnvBool("HK97_AUDIO", false)
	if err != nil {
		return err
	}
	if withAudio {
		player := audio.NewPlayer()
		if err := player.Start(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			opts.Listener = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger.Info("starting", "lives", tuning.InitialLives, "best", store.Best())
	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, opts)
}
