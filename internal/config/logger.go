package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type LoggerConfig struct {
	Level       string `yaml:"level"`
	Destination string `yaml:"destination,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

func (conf *LoggingConfig) validate() error {
	var err error
	levels := map[string]bool{"none": true, "normal": true, "debug": true}
	if !levels[conf.ConsoleLogger.Level] {
		err = multierr.Append(err, fmt.Errorf("logging.console.level: unknown %q", conf.ConsoleLogger.Level))
	}
	if !levels[conf.FileLogger.Level] {
		err = multierr.Append(err, fmt.Errorf("logging.file.level: unknown %q", conf.FileLogger.Level))
	}
	if conf.FileLogger.Level != "none" && conf.FileLogger.Destination == "" {
		err = multierr.Append(err, errors.New("logging.file.destination: required when file logging is on"))
	}
	switch conf.FileLogger.Mode {
	case "", "append", "overwrite":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.file.mode: unknown %q", conf.FileLogger.Mode))
	}
	return err
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}

// Prepare returns the program logger. Console records below error go to
// stdout and the rest to stderr; the file core, when enabled, gets
// everything at its level. The returned close function flushes and
// releases the log file.
func (conf *LoggingConfig) Prepare(debug bool) (*zap.Logger, func() error, error) {
	consoleLevel := conf.ConsoleLogger.Level
	if debug {
		consoleLevel = "debug"
	}

	encoderFor := func(stream *os.File) zapcore.EncoderConfig {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeCaller = nil
		if EnableColorOutput(stream) {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
			ec.TimeKey = zapcore.OmitKey
		} else {
			ec.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		return ec
	}

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	var consoleCoreHP, consoleCoreLP zapcore.Core
	switch consoleLevel {
	case "normal", "debug":
		lowest := zapcore.InfoLevel
		if consoleLevel == "debug" {
			lowest = zapcore.DebugLevel
		}
		consoleCoreLP = zapcore.NewCore(zapcore.NewConsoleEncoder(encoderFor(os.Stdout)), zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return lowest <= lvl && lvl < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(newEncoder(encoderFor(os.Stderr)), zapcore.Lock(os.Stderr), highPriority)
	default:
		consoleCoreLP = zapcore.NewNopCore()
		consoleCoreHP = zapcore.NewNopCore()
	}

	fileCore := zapcore.NewNopCore()
	closer := func() error { return nil }

	var level zapcore.Level
	switch conf.FileLogger.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "normal":
		level = zapcore.InfoLevel
	}
	if conf.FileLogger.Level == "debug" || conf.FileLogger.Level == "normal" {
		flags := os.O_CREATE | os.O_WRONLY
		if conf.FileLogger.Mode == "append" {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(conf.FileLogger.Destination, flags, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), level)
		closer = f.Close
	}

	log := zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore), zap.AddCaller()).Named("flexlayout")
	return log, func() error {
		_ = log.Sync()
		return closer()
	}, nil
}

// When logging an error to the console do not output the verbose message.

type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			e := f.Interface.(error)
			f.Interface = errors.New(e.Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
