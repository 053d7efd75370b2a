package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/config"
)

// env is the program state shared by commands.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	closeLog func() error
	start    time.Time
}

type envKey struct{}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &env{log: zap.NewNop(), start: time.Now()})
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop(), start: time.Now()}
}
