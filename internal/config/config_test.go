package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/canvas"
	"github.com/grindlemire/go-flex/wire"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 4, cfg.Engine.CacheSize)
	assert.Equal(t, "none", cfg.Engine.Rounding)
	assert.Equal(t, float32(1), cfg.Engine.PointScale)
	assert.Equal(t, wire.FormatYAML, cfg.Format())
	assert.Equal(t, canvas.BorderSingle, cfg.Border())
	assert.Equal(t, "normal", cfg.Logging.ConsoleLogger.Level)
	assert.Equal(t, "none", cfg.Logging.FileLogger.Level)
}

func TestLoad_Superimposed(t *testing.T) {
	path := writeConfig(t, `
engine:
  rounding: pixel
  point_scale: 2
output:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Engine.CacheSize, "unset values keep their defaults")
	assert.Equal(t, "pixel", cfg.Engine.Rounding)
	assert.Equal(t, wire.FormatJSON, cfg.Format())

	opts, err := cfg.EngineOptions()
	require.NoError(t, err)
	e, err := flex.New(opts...)
	require.NoError(t, err)

	s := flex.DefaultStyle()
	s.Size = flex.Size[flex.Value]{Width: flex.Points(10.3), Height: flex.Points(1)}
	h, err := e.NewNode(s)
	require.NoError(t, err)
	l, err := e.ComputeLayout(h, flex.Unbounded(), flex.Unbounded())
	require.NoError(t, err)
	assert.Equal(t, float32(10.5), l.Width, "pixel rounding at scale 2")
}

func TestLoad_Errors(t *testing.T) {
	type tc struct {
		content string
		want    []string
	}

	tests := map[string]tc{
		"unknown field": {
			content: "engine:\n  cache: 3\n",
			want:    []string{"cache"},
		},
		"every invalid setting": {
			content: `
version: 2
engine:
  cache_size: 40
  rounding: ceil
  point_scale: 0
output:
  format: toml
  border: dotted
logging:
  console:
    level: loud
  file:
    level: debug
    mode: rotate
`,
			want: []string{"version", "cache_size", "rounding", "point_scale", "output.format", "output.border",
				"console.level", "file.destination", "file.mode"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
			if len(tt.want) > 1 {
				assert.Len(t, multierr.Errors(err), len(tt.want))
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestDump_RoundTrip(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Engine.CacheSize = 7

	data, err := Dump(cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "cache_size: 7"))

	again, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestPrepare_FileLogger(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "flex.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: dest, Mode: "overwrite"},
	}

	log, closeLog, err := conf.Prepare(false)
	require.NoError(t, err)
	log.Debug("hidden record")
	log.Info("visible record")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible record")
	assert.NotContains(t, string(data), "hidden record")
	assert.Contains(t, string(data), "flexlayout")
}

func TestPrepare_BadDestination(t *testing.T) {
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "debug", Destination: filepath.Join(t.TempDir(), "missing", "dir", "x.log")},
	}
	_, _, err := conf.Prepare(false)
	require.Error(t, err)
}
