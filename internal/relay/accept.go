package relay

import (
	"context"
	"net"

	"portbridge/internal/logger"
)

// acceptLoop accepts connections on ln until the server context is cancelled
// or the listener is closed, spawning a Session per accepted connection. Both
// exit conditions are normal termination: Stop closes the listener precisely
// to kick a blocked Accept out.
//
// Any other accept failure is transient by assumption (resource exhaustion
// clears itself); it is logged and the loop keeps going.
func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) {
	// Stop already closes the listener; this is the loop's own cleanup for
	// the failure exits. Double close of a net.Listener is a harmless error.
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if isShutdownError(ctx, err) {
				logger.Debug("accept loop exiting", "local", ln.Addr().String())
				return
			}
			logger.Warn("accept failed", "error", err)
			continue
		}

		sess := newSession(s, conn)
		active := s.active.Add(1)
		logger.Info("accepted", "session", sess.id, "active", active)

		// Register before launching so Stop cannot miss a session accepted
		// concurrently with the shutdown request.
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			sess.run(ctx)
		}()
	}
}
