// Command portfolioctl is the admin client of the portfolio API.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"portfolio/config"
	"portfolio/internal/client/api"
	"portfolio/internal/client/gate"
	"portfolio/internal/client/session"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn}))
	cfg := config.NewClientConfig()

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		path, err := session.DefaultTokenPath()
		if err != nil {
			logger.Error("Cannot locate token file", slog.Any("error", err))
			os.Exit(1)
		}
		tokenPath = path
	}

	client := api.New(cfg.BaseURL, api.WithTimeout(cfg.Timeout))
	store := session.NewStore(session.NewFileStorage(tokenPath), client,
		session.WithLogger(logger),
		session.WithLoginPath(cfg.LoginPath),
		session.WithRedirect(func(path string) {
			fmt.Fprintf(os.Stderr, "Session expired. Sign in again with `portfolioctl login` (%s).\n", path)
		}),
	)
	defer store.Close()

	a := &app{
		client: client,
		store:  store,
		gate:   gate.New(cfg.LoginPath),
		out:    os.Stdout,
		in:     bufio.NewReader(os.Stdin),
		readPassword: func() (string, error) {
			pw, err := term.ReadPassword(int(os.Stdin.Fd()))

			return string(pw), err
		},
	}

	if err := a.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
