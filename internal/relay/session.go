package relay

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"portbridge/internal/logger"
)

// dialTimeout bounds the outbound connect on top of context cancellation, so
// an unreachable remote cannot hold a session goroutine indefinitely.
const dialTimeout = 10 * time.Second

// Session bridges one accepted client connection to one dialed remote
// connection. It fully owns both sockets and never reports errors to the
// accept loop: a failing session closes out on its own without affecting the
// listener or other sessions.
type Session struct {
	client net.Conn
	remote net.Conn
	server *Server
	id     string

	sent     atomic.Int64 // client -> remote bytes
	received atomic.Int64 // remote -> client bytes
}

func newSession(server *Server, client net.Conn) *Session {
	return &Session{
		client: client,
		server: server,
		id:     client.RemoteAddr().String(),
	}
}

// run drives the session from dial to teardown. ctx is the server-wide
// context; the session derives its own so that either a global Stop or the
// first direction finishing tears the whole session down.
func (s *Session) run(ctx context.Context) {
	defer s.teardown()

	dialer := net.Dialer{Timeout: dialTimeout}
	remote, err := dialer.DialContext(ctx, "tcp", s.server.remoteAddr)
	if err != nil {
		if !isShutdownError(ctx, err) {
			logger.Warn("dial failed", "session", s.id, "remote", s.server.remoteAddr, "error", err)
		}
		return
	}
	s.remote = remote
	logger.Info("connected", "session", s.id, "remote", s.server.remoteAddr)

	s.relay(ctx)
}

// relay runs the two copy pipes that form the duplex relay and blocks until
// both have stopped. The first pipe to finish, for any reason, cancels the
// session context; the watcher then closes both sockets, which unblocks the
// sibling pipe from whatever read or write it is sitting in. This bounds the
// session's lifetime to the shorter-lived direction.
func (s *Session) relay(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	watcherDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.client.Close()
		s.remote.Close()
		close(watcherDone)
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer cancel()
		copyConn(ctx, s.remote, s.client, &s.sent, s.id, "client->remote")
	}()
	go func() {
		defer wg.Done()
		defer cancel()
		copyConn(ctx, s.client, s.remote, &s.received, s.id, "remote->client")
	}()
	wg.Wait()

	// Both pipes have stopped. Make sure the watcher has run to completion
	// before the session is declared finished.
	cancel()
	<-watcherDone
}

// teardown closes whatever is still open and deregisters the session. Close
// errors carry no information at this point and are swallowed.
func (s *Session) teardown() {
	s.client.Close()
	if s.remote != nil {
		s.remote.Close()
	}
	active := s.server.active.Add(-1)
	logger.Info("session closed",
		"session", s.id,
		"sent", s.sent.Load(),
		"received", s.received.Load(),
		"active", active)
}
