// Package graceful wires process signals into server shutdown.
package graceful

import (
	"os"
	"os/signal"
	"syscall"
)

// MakeSigintChan returns a channel that receives SIGINT and SIGTERM. The
// caller shuts the fiber app down on the first value.
func MakeSigintChan() chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
