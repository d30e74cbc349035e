// Package logging hands out scoped leveled loggers. Levels are picked up from
// the PION_LOG_* environment variables by the underlying factory, e.g.
// PION_LOG_DEBUG=ntv2-blit,ntv2-component.
package logging

import (
	"github.com/pion/logging"
)

const scopePrefix = "ntv2-"

var loggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns the logger for scope. Scopes are package names such as
// "blit" or "component".
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scopePrefix + scope)
}
