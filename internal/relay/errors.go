package relay

import (
	"context"
	"errors"
	"net"
)

// ErrAlreadyRunning is returned by Start when the server is already running.
// The original listener is left untouched.
var ErrAlreadyRunning = errors.New("relay: server already running")

// isClosedConnError reports whether err came from using a listener or
// connection after it was closed.
func isClosedConnError(err error) bool {
	return errors.Is(err, net.ErrClosed)
}

// isShutdownError classifies an I/O error against the cancellation state of
// ctx. Once ctx is cancelled, any error from a read, write, dial or accept is
// an expected consequence of teardown and must not be reported as a failure.
// A closed-connection error is likewise benign: the peer direction already
// finished and closed the socket out from under us. Error type alone is not
// enough for the first case, which is why ctx is consulted first.
func isShutdownError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx.Err() != nil {
		return true
	}
	return isClosedConnError(err)
}
