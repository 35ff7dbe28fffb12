// Package app wires config, logging and recording for the game hosts.
package app

import (
	"errors"
	"io"
	"log/slog"
	"minisnake/config"
	"minisnake/game"
	"minisnake/internal/logging"
	"minisnake/record"
	"minisnake/ui"
)

type Env struct {
	Config   config.Config
	Logger   *slog.Logger
	Theme    ui.Theme
	Recorder *record.Recorder

	closers []io.Closer
}

// Setup loads the config at configPath (empty means defaults) and builds the
// logger and, when recordPath is set, the step recorder. Logs go to logOut
// unless the config names a log file.
func Setup(configPath, recordPath string, logOut io.Writer) (*Env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	env := &Env{Config: cfg}

	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		env.closers = append(env.closers, f)
		logOut = f
	}
	env.Logger, err = logging.New(logOut, cfg.Log.Level)
	if err != nil {
		env.Close()
		return nil, err
	}

	env.Theme, err = cfg.Theme.Resolve()
	if err != nil {
		env.Close()
		return nil, err
	}

	if recordPath != "" {
		rec, err := record.Create(recordPath, env.Logger)
		if err != nil {
			env.Close()
			return nil, err
		}
		env.Recorder = rec
		env.closers = append(env.closers, rec)
		env.Logger.Info("recording sessions", "path", recordPath)
	}

	env.Logger.Debug("config loaded", "path", configPath, "window", cfg.Window, "level", cfg.Log.Level)
	return env, nil
}

// GameOptions are the game.NewGame options implied by the environment.
func (e *Env) GameOptions() []game.Option {
	opts := []game.Option{game.WithLogger(e.Logger)}
	if e.Recorder != nil {
		opts = append(opts, game.WithObserver(e.Recorder))
	}
	return opts
}

// Close releases resources in reverse order of creation.
func (e *Env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	e.closers = nil
	return errors.Join(errs...)
}
