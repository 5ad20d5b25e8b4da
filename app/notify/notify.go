// Package notify shows the workflow's fire-and-forget messages on a
// terminal.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/Guerrilla-Interactive/featgen/app"
)

// Terminal prints info messages to Out and errors to Err. Writes are
// serialized so concurrent callers never interleave lines.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
	log *zap.Logger
}

// NewTerminal returns a notifier. log may be nil.
func NewTerminal(out, errOut io.Writer, log *zap.Logger) *Terminal {
	if log == nil {
		log = zap.NewNop()
	}
	return &Terminal{out: out, err: errOut, log: log}
}

func (t *Terminal) Info(msg string) {
	t.log.Debug("Notify", zap.String("level", "info"), zap.String("msg", msg))
	t.print(t.out, app.InfoStyle.Render(msg))
}

func (t *Terminal) Error(msg string) {
	t.log.Debug("Notify", zap.String("level", "error"), zap.String("msg", msg))
	t.print(t.err, app.ErrorStyle.Render(msg))
}

func (t *Terminal) print(w io.Writer, line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(w, line)
}
