package cmd

import (
	"fmt"

	"github.com/abhisek/clozeiz/internal/config"
	"github.com/abhisek/clozeiz/internal/history"
	"github.com/abhisek/clozeiz/internal/logger"
	"github.com/abhisek/clozeiz/internal/quizgen"
	"github.com/spf13/cobra"
)

// deps holds everything a command needs to generate quizzes.
type deps struct {
	cfg     config.Config
	log     *logger.Logger
	tracker *history.Tracker
	gen     *quizgen.Generator
}

// loadDeps resolves config, logger, history and generator from flags and
// environment. With tui set, logs go nowhere unless a log file is given,
// since stderr output would corrupt the screen.
func loadDeps(cmd *cobra.Command, tui bool, opts ...quizgen.Option) (*deps, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}

	level := cfg.Log.Level
	if tui && cfg.Log.File == "" {
		level = logger.LevelOff
	}
	log, err := logger.New(level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	tracker := history.New(cfg.History.Capacity, history.WithEvictHook(func(fp string, ids []int) {
		log.Debug("history entry evicted", "fingerprint", fp, "ids", len(ids))
	}))

	opts = append([]quizgen.Option{quizgen.WithLogger(log)}, opts...)
	return &deps{
		cfg:     cfg,
		log:     log,
		tracker: tracker,
		gen:     quizgen.New(cfg.Engine, tracker, opts...),
	}, nil
}
