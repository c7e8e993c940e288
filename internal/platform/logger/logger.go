package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Format controla el formato de salida del logger.
type Format string

const (
	// FormatJSON emite una línea JSON por evento (producción).
	FormatJSON Format = "json"
	// FormatConsole emite salida legible con colores (desarrollo).
	FormatConsole Format = "console"
)

type Options struct {
	Level  string
	Format Format
	App    string
}

// New crea el logger del proceso sobre zerolog.
// Niveles inválidos o vacíos caen a info.
func New(opts Options) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var l zerolog.Logger
	switch opts.Format {
	case FormatConsole:
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	default:
		l = zerolog.New(os.Stdout)
	}

	ctx := l.Level(lvl).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		ctx = ctx.Str("app", app)
	}
	return ctx.Logger()
}
