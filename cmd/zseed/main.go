package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zseed/internal/cli"
	"golang.org/x/term"
)

func main() {
	app := zapp.New(zapp.WithName("zseed"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	env := cli.Env{
		FS:          zfilesystem.NewOSFileSystem("."),
		Out:         os.Stdout,
		Interactive: term.IsTerminal(int(os.Stdout.Fd())),
	}

	if err := cli.Run(ctx, cli.DefaultConfig(), env); err != nil {
		slog.Error("seed", "err", err)
		_ = app.Close()
		cancel()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}
