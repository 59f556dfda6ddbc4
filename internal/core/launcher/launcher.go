// Package launcher opens resolved view URLs in the user's browser.
package launcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/bluebook/internal/core/logging"
	"github.com/colonyops/bluebook/pkg/executil"
)

// ErrNoCommand is returned when the launcher has no opener command.
var ErrNoCommand = errors.New("no opener command configured")

// Launcher runs the configured opener command with a URL appended.
type Launcher struct {
	exec    executil.Executor
	command []string
	log     zerolog.Logger
}

// New creates a launcher. command is the opener and its leading arguments,
// e.g. ["rundll32", "url.dll,FileProtocolHandler"].
func New(exec executil.Executor, command []string) *Launcher {
	return &Launcher{
		exec:    exec,
		command: append([]string(nil), command...),
		log:     logging.Component("launcher"),
	}
}

// Command returns the argv that would open url.
func (l *Launcher) Command(url string) []string {
	argv := append([]string(nil), l.command...)
	return append(argv, url)
}

// Open opens url in a new browsing context.
func (l *Launcher) Open(ctx context.Context, url string) error {
	if len(l.command) == 0 || l.command[0] == "" {
		return ErrNoCommand
	}

	argv := l.Command(url)
	l.log.Debug().Ctx(ctx).Str("url", url).Strs("argv", argv).Msg("opening")

	if _, err := l.exec.Run(ctx, argv[0], argv[1:]...); err != nil {
		l.log.Error().Ctx(ctx).Err(err).Str("url", url).Msg("failed to open")
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
