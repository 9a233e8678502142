package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/annedawson/amphibians/internal/config"
	"github.com/annedawson/amphibians/internal/container"
	"github.com/annedawson/amphibians/internal/logging"
	"github.com/annedawson/amphibians/internal/prefs"
	"github.com/annedawson/amphibians/internal/state"
	"github.com/annedawson/amphibians/internal/ui"
)

// ErrFetchFailed is returned in plain mode when the listing could not be
// loaded.
var ErrFetchFailed = errors.New("could not load amphibians")

// Options configure the application.
type Options struct {
	ConfigPath string
	PrefsPath  string    // empty uses default ~/.config/amphibians/prefs.toml
	Plain      bool      // print the first settled state and exit instead of the TUI
	Stdout     io.Writer // plain mode output; nil uses os.Stdout
}

// Run boots the application until the user quits or the context is
// cancelled. In plain mode it returns once the initial fetch settles.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	c, err := container.New(cfg)
	if err != nil {
		log.WithError(err).Error("startup failed")
		return err
	}
	log.WithField("base_url", c.BaseURL()).Info("starting")

	vm := state.NewPhotosViewModel(ctx, c.PhotosRepository(), state.WithLogger(log))
	defer vm.Close()

	stop := StartTransitionLogger(vm, log)
	defer stop()

	if opts.Plain {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		return runPlain(ctx, vm, out)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Photos:    vm,
		Prefs:     prefs.Load(opts.PrefsPath),
		PrefsPath: opts.PrefsPath,
		LogFile:   cfg.LogFile,
		BaseURL:   c.BaseURL(),
		Logger:    log,
	})
}

// runPlain waits for the first state that is not Loading and prints it.
func runPlain(ctx context.Context, src Subscriber, out io.Writer) error {
	ch, cancel := src.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-ch:
			if !ok {
				return errors.New("state stream closed before the listing settled")
			}
			if _, loading := s.(state.Loading); loading {
				continue
			}
			if err := ui.RenderPlain(out, s); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if _, failed := s.(state.Error); failed {
				return ErrFetchFailed
			}
			return nil
		}
	}
}
