package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"veil/internal/config"
	"veil/internal/logging"
	"veil/internal/render"
)

func newLogger(cmd *cobra.Command, opts *rootOptions) (*slog.Logger, *slog.LevelVar, error) {
	logger, levelVar, err := logging.New(logging.Options{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, err
	}
	return logger.With("session", uuid.NewString()[:8]), levelVar, nil
}

// loadEffective resolves the option set a compositor run would see: defaults,
// then the configuration file, then command-line overrides. A syntax error in
// the file is reported and the defaults stay in effect; every other load
// failure aborts the command.
func loadEffective(cmd *cobra.Command, opts *rootOptions) (config.Options, config.Result, error) {
	logger, levelVar, err := newLogger(cmd, opts)
	if err != nil {
		return config.Options{}, config.Result{}, err
	}

	opt := config.Default()
	loader := &config.Loader{Log: logger, Level: levelVar}
	res, err := loader.Load(opts.configPath, &opt)
	if err != nil {
		var parseErr *config.ParseError
		if !errors.As(err, &parseErr) {
			return config.Options{}, config.Result{}, err
		}
		logger.Error("configuration file is invalid, continuing with defaults",
			"path", parseErr.Path, "line", parseErr.Line, "detail", parseErr.Message)
		opt = config.Default()
		res = config.Result{Path: parseErr.Path}
	}

	if err := applyFlagOverrides(cmd, opts, &opt); err != nil {
		return config.Options{}, config.Result{}, err
	}
	return opt, res, nil
}

// applyFlagOverrides re-applies flags the user set so the command line wins
// over file values. Runs after Load because the loader writes every key
// present in the document.
func applyFlagOverrides(cmd *cobra.Command, opts *rootOptions, opt *config.Options) error {
	flags := cmd.Flags()

	if flags.Changed("backend") {
		backend, ok := render.ParseBackend(opts.backend)
		if !ok {
			return fmt.Errorf("backend: unrecognized value %q", opts.backend)
		}
		opt.Backend = backend
	}
	if flags.Changed("vsync") {
		mode, ok := render.ParseVSync(opts.vsync)
		if !ok {
			return fmt.Errorf("vsync: unrecognized value %q", opts.vsync)
		}
		opt.VSync = mode
	}
	if flags.Changed("shadow") {
		opt.ShadowEnable = opts.shadow
	}
	if flags.Changed("fading") {
		opt.FadingEnable = opts.fading
	}
	if flags.Changed("inactive-opacity") {
		v := opts.inactiveOpacity
		if v > 1 {
			v = 1
		}
		if v < 0 {
			v = 0
		}
		opt.InactiveOpacity = v * config.Opaque
	}
	return nil
}
