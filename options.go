package flex

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/cache"
	"github.com/grindlemire/go-flex/internal/flexbox"
)

// Rounding selects how computed coordinates are snapped.
type Rounding = flexbox.Rounding

const (
	RoundNone      = flexbox.RoundNone
	RoundPixelGrid = flexbox.RoundPixelGrid
)

// Option is a functional option for configuring an Engine.
type Option func(*Engine) error

// WithLogger sets the logger for debug records. Default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) error {
		if log == nil {
			return fmt.Errorf("logger must not be nil")
		}
		e.log = log
		return nil
	}
}

// WithCacheSize sets how many layout results are kept per node.
// Default is 4. Valid range is 1-16.
func WithCacheSize(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("cache size must be at least 1")
		}
		if n > cache.MaxCapacity {
			return fmt.Errorf("cache size cannot exceed %d", cache.MaxCapacity)
		}
		e.cacheSize = n
		return nil
	}
}

// WithRounding selects the rounding policy applied to every computed
// layout. Default is RoundNone.
func WithRounding(mode Rounding) Option {
	return func(e *Engine) error {
		if mode != RoundNone && mode != RoundPixelGrid {
			return fmt.Errorf("unknown rounding mode %d", mode)
		}
		e.rounding = mode
		return nil
	}
}

// WithPointScaleFactor sets the number of device pixels per point used by
// RoundPixelGrid. Default is 1. Must be positive.
func WithPointScaleFactor(scale float32) Option {
	return func(e *Engine) error {
		if !(scale > 0) {
			return fmt.Errorf("point scale factor must be positive, got %v", scale)
		}
		e.scale = scale
		return nil
	}
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) Option {
	return func(e *Engine) error {
		if n < 0 {
			return fmt.Errorf("capacity must not be negative")
		}
		e.capacity = n
		return nil
	}
}
