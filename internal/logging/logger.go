package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// LevelEnv overrides the log level when --debug is not set
const LevelEnv = "DEPLOY_LOG_LEVEL"

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	return newLogger(os.Stderr, cfg.Debug, os.Getenv(LevelEnv))
}

// Level resolves the effective log level. --debug wins over the environment.
func Level(debug bool, levelEnv string) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return parseLevel(levelEnv)
}

func newLogger(w io.Writer, debug bool, levelEnv string) *slog.Logger {
	level := Level(debug, levelEnv)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time in non-debug mode for cleaner output
			if a.Key == slog.TimeKey && !debug {
				return slog.Attr{}
			}
			// Shorten source paths
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = shortPath(source.File)
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(val string) slog.Level {
	switch strings.ToLower(val) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// shortPath returns the path relative to internal/, or the file name
func shortPath(file string) string {
	if idx := strings.Index(file, "internal/"); idx != -1 {
		return file[idx:]
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		return file[idx+1:]
	}
	return file
}
