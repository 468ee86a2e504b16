package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	flag "github.com/spf13/pflag"

	telegramify "github.com/riverfjs/telegramify-html"
	"github.com/riverfjs/telegramify-html/internal/config"
	"github.com/riverfjs/telegramify-html/internal/types"
	"github.com/riverfjs/telegramify-html/internal/yamlutil"
)

var (
	ErrReadInput      = errors.New("failed to read input")
	ErrWatchNeedsFile = errors.New("--watch requires a file argument")
)

// output is the --json shape.
type output struct {
	ParseMode string   `json:"parse_mode"`
	Chunks    []string `json:"chunks"`
}

// renderer holds everything resolved from flags and config.
type renderer struct {
	flags     *cliFlags
	config    *types.RenderConfig
	maxLength int
	logger    *slog.Logger
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if flags.version {
		fmt.Fprintln(stdout, "telegramify", Version)
		return nil
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one file, got %d", ErrUsage, len(positional))
	}

	cfg, err := config.LoadRenderConfig(flags.config)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	r := &renderer{
		flags:     flags,
		config:    cfg,
		maxLength: flags.maxLength,
		logger:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	if r.maxLength == 0 {
		r.maxLength = cfg.MaxLength
	}

	if flags.printConfig {
		return r.printConfig(stdout)
	}

	if flags.watch {
		if len(positional) == 0 {
			return fmt.Errorf("%w: %w", ErrUsage, ErrWatchNeedsFile)
		}
		return r.watch(ctx, positional[0], stdout)
	}

	markdown, err := readInput(positional, stdin)
	if err != nil {
		return err
	}
	return r.render(ctx, markdown, stdout)
}

func readInput(positional []string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(positional) == 0 || positional[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(positional[0]) // #nosec G304 -- path is user-provided
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// render converts markdown and writes the chunks to w.
func (r *renderer) render(ctx context.Context, markdown string, w io.Writer) error {
	contents, err := telegramify.ProcessMarkdown(ctx, markdown, r.maxLength, r.flags.plain,
		telegramify.WithConfig(r.config),
		telegramify.WithLogger(r.logger),
	)
	if err != nil {
		return err
	}

	out := output{ParseMode: telegramify.ParseModeHTML}
	if r.flags.plain {
		out.ParseMode = telegramify.ParseModeNone
	}
	for _, c := range contents {
		if text, ok := c.(*telegramify.Text); ok {
			out.Chunks = append(out.Chunks, text.Text)
		}
	}

	if r.flags.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(out)
	}
	_, err = fmt.Fprintln(w, strings.Join(out.Chunks, r.flags.separator))
	return err
}

// printConfig writes the effective render config, flags applied.
func (r *renderer) printConfig(w io.Writer) error {
	cfg := r.config.Clone()
	cfg.MaxLength = r.maxLength
	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// watch renders path once, then again after every write until ctx ends.
func (r *renderer) watch(ctx context.Context, path string, w io.Writer) error {
	var mu sync.Mutex
	renderFile := func() {
		mu.Lock()
		defer mu.Unlock()
		markdown, err := readInput([]string{path}, nil)
		if err != nil {
			r.logger.Error("read failed", "path", path, "error", err)
			return
		}
		if err := r.render(ctx, markdown, w); err != nil {
			r.logger.Warn("render failed", "path", path, "error", err)
		}
	}

	renderFile()

	watcher := NewWatcher(r.logger)
	if err := watcher.Watch(path, renderFile); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer watcher.Close()

	r.logger.Info("watching", "path", path)
	<-ctx.Done()
	return nil
}
