// Command registrar validates one user and stores it in the configured storage.
//
//	registrar -login alice -password s3cret! -age 30
//
// Storage is chosen by STORAGE_DRIVER (memory or postgres); see pkg/config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	// internal imports
	"github.com/artem13815/registration/pkg/config"
	"github.com/artem13815/registration/pkg/health"
	"github.com/artem13815/registration/pkg/registration"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("registrar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	login := fs.String("login", "", "user login (unique)")
	password := fs.String("password", "", "user password")
	age := fs.String("age", "", "user age; omit when unknown")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	user := registration.User{Login: *login, Password: *password}
	if *age != "" {
		n, err := strconv.Atoi(*age)
		if err != nil {
			fmt.Fprintf(stderr, "invalid -age %q: %v\n", *age, err)
			return exitUsage
		}
		user.Age = &n
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitError
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	store, checkers, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Error("open storage", "driver", cfg.StorageDriver, "error", err)
		return exitError
	}
	defer closeStore()

	readiness := health.NewService(checkers...)
	if err := readiness.Ready(ctx); err != nil {
		logger.Error("storage not ready", "error", err)
		return exitError
	}

	svc := registration.NewService(store, logger)
	stored, err := svc.Register(ctx, user)
	if err != nil {
		if errors.Is(err, registration.ErrInvalidData) {
			logger.Warn("registration rejected", "login", user.Login, "error", err)
		} else {
			logger.Error("registration failed", "login", user.Login, "error", err)
		}
		return exitError
	}

	attrs := []any{"login", stored.Login, "driver", cfg.StorageDriver}
	if stored.Age != nil {
		attrs = append(attrs, "age", *stored.Age)
	}
	logger.Info("stored", attrs...)
	return exitOK
}
