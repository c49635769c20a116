/*
Package logging builds the console logger used by the command line tools.
*/
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

const (
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33

	colorBold = 1
)

func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// SyncWriter serializes writes to the underlying writer.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter creates a writer that serializes writes to w.
func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

func (sw *SyncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	return sw.w.Write(p)
}

// New creates a console logger writing to w at the given level.
// Escape sequences are translated by go-colorable for files and stripped when noColor is set.
func New(w io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	out := w
	switch f, ok := w.(*os.File); {
	case noColor:
		out = colorable.NewNonColorable(w)
	case ok:
		out = colorable.NewColorable(f)
	}

	output := zerolog.ConsoleWriter{
		Out:        NewSyncWriter(out),
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}

	output.FormatLevel = func(i interface{}) string {
		return fmt.Sprintf("| %s |", formatLevel(i, noColor))
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func formatLevel(i interface{}, noColor bool) string {
	ll, ok := i.(string)
	if !ok {
		if i == nil {
			return colorize("???  ", colorBold, noColor)
		}
		return strings.ToUpper(fmt.Sprintf("%-5s", i))[0:5]
	}

	switch ll {
	case zerolog.LevelDebugValue:
		return colorize("DEBUG", colorYellow, noColor)
	case zerolog.LevelInfoValue:
		return colorize("INFO ", colorGreen, noColor)
	case zerolog.LevelErrorValue:
		return colorize(colorize("ERROR", colorRed, noColor), colorBold, noColor)
	default:
		return colorize(strings.ToUpper(ll), colorBold, noColor)
	}
}
