// Package cli wires generation, export and the summary into one run.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zseed/internal/export"
	"github.com/zarlcorp/zseed/internal/report"
	"github.com/zarlcorp/zseed/internal/tui"
	"github.com/zarlcorp/zseed/internal/user"
)

// Env holds what a run reads from and writes to.
type Env struct {
	FS  zfilesystem.ReadWriteFileFS
	Out io.Writer

	// Interactive draws a progress bar on Out while generating.
	Interactive bool

	// Source and Clock override randomness and time; nil means real ones.
	Source user.Source
	Clock  func() time.Time
}

// Run generates cfg.RecordCount users, writes them to cfg.OutputFile and
// prints the summary. Nothing is written unless the whole batch succeeds.
func Run(ctx context.Context, cfg Config, env Env) error {
	if err := report.Banner(env.Out, cfg.RecordCount); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	slog.Info("seeding", "count", cfg.RecordCount, "file", cfg.OutputFile)
	start := time.Now()
	batch := func(count int, fn func(done, total int)) ([]user.User, error) {
		return user.New(cfg.DefaultPassword, cfg.RoleDistribution, generatorOptions(cfg, env, fn)...).Generate(count)
	}

	var users []user.User
	var err error
	if env.Interactive {
		users, err = tui.Generate(ctx, env.Out, cfg.RecordCount, batch)
	} else {
		users, err = batch(cfg.RecordCount, nil)
	}
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	// a signal during generation still aborts before anything hits disk
	if ctx.Err() != nil {
		return fmt.Errorf("seed: %w", tui.ErrInterrupted)
	}

	slog.Info("generated", "count", len(users), "file", cfg.OutputFile, "elapsed", time.Since(start).Round(time.Millisecond))

	if err := export.Write(env.FS, cfg.OutputFile, users); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if err := report.Render(env.Out, report.Summary{File: cfg.OutputFile, Users: users}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func generatorOptions(cfg Config, env Env, fn func(done, total int)) []user.Option {
	opts := []user.Option{user.WithCost(cfg.BcryptCost)}
	if fn != nil {
		opts = append(opts, user.WithProgress(fn))
	}
	if env.Source != nil {
		opts = append(opts, user.WithSource(env.Source))
	}
	if env.Clock != nil {
		opts = append(opts, user.WithClock(env.Clock))
	}
	return opts
}
