package relay

import (
	"context"
	"io"
	"net"
	"sync/atomic"

	"portbridge/internal/logger"
)

// copyConn moves bytes from src to dst until src reaches EOF, the session is
// cancelled, or either side fails. Bytes are forwarded chunk by chunk in read
// order; a net.Conn write completes (or fails) before the next read starts,
// so there is no cross-chunk buffering to flush. copied is incremented as
// chunks are delivered.
//
// All terminations are normal from the caller's point of view: an orderly EOF
// ends the pipe silently, cancellation ends it silently, and a genuine I/O
// error is logged but never escalated. A relay peer may disconnect at any
// moment, so broken pipes and resets are expected outcomes here.
func copyConn(ctx context.Context, dst, src net.Conn, copied *atomic.Int64, session, dir string) {
	buf := getBuffer()
	defer putBuffer(buf)

	for {
		n, err := src.Read(*buf)
		if n > 0 {
			if _, werr := dst.Write((*buf)[:n]); werr != nil {
				if !isShutdownError(ctx, werr) {
					logger.Warn("relay write failed", "session", session, "dir", dir, "error", werr)
				}
				return
			}
			copied.Add(int64(n))
			logger.Debug("relayed chunk", "session", session, "dir", dir, "bytes", n)
		}
		if err != nil {
			switch {
			case err == io.EOF:
				// Orderly EOF from src.
				logger.Debug("pipe done", "session", session, "dir", dir)
			case isShutdownError(ctx, err):
				// Cancelled, or the sibling direction finished first and
				// closed the socket. Not a failure.
				logger.Debug("pipe cancelled", "session", session, "dir", dir)
			default:
				logger.Warn("relay read failed", "session", session, "dir", dir, "error", err)
			}
			return
		}
	}
}
