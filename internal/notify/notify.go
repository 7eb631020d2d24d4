// Package notify defines the sink the core services use to surface
// success/failure messages to the operator-facing UI. The services only
// depend on the interface; the HTTP layer decides how messages reach users.
package notify

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Notifier receives user-visible messages for every completed or rejected
// cart/sale/register operation.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

type logNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier returns a Notifier that writes structured log events.
func NewLogNotifier() Notifier {
	return &logNotifier{log: log.With().Str("component", "notify").Logger()}
}

func (n *logNotifier) Success(title, message string) {
	n.log.Info().Str("title", title).Msg(message)
}

func (n *logNotifier) Error(title, message string) {
	n.log.Warn().Str("title", title).Msg(message)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Success(string, string) {}
func (Nop) Error(string, string)   {}
