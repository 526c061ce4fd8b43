package relay

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"portbridge/internal/logger"
)

// Config fixes the endpoints of a Server. It is immutable once the Server is
// constructed.
type Config struct {
	LocalPort  uint16
	RemoteHost string
	RemotePort uint16
}

// Server is the proxy facade. It owns the listener, the shared cancellation
// context, and the bookkeeping used to wait out in-flight sessions on Stop.
//
// A Server moves between exactly two states: stopped and running. Start on a
// running server is an error; Stop on a stopped server is a no-op. The mutex
// guards the state transition only; the data path itself is lock-free, every
// socket being owned by exactly one goroutine.
type Server struct {
	cfg        Config
	localAddr  string
	remoteAddr string

	mu       sync.Mutex
	running  bool
	listener net.Listener
	cancel   context.CancelFunc

	// wg counts the accept loop plus every session goroutine spawned under
	// this server. Stop blocks on it draining.
	wg     sync.WaitGroup
	active atomic.Int32
}

// NewServer constructs a stopped Server for the given endpoints. No
// validation happens here; a bad remote host surfaces as per-session dial
// failures, and a bad local port surfaces from Start.
func NewServer(cfg Config) *Server {
	return &Server{
		cfg:        cfg,
		localAddr:  fmt.Sprintf("0.0.0.0:%d", cfg.LocalPort),
		remoteAddr: net.JoinHostPort(cfg.RemoteHost, strconv.Itoa(int(cfg.RemotePort))),
	}
}

// Start binds the local port and launches the accept loop in the background.
// It returns as soon as the listener is bound, without waiting for any
// connection. A fresh cancellation context is created on every Start so a
// previous Stop can never bleed into a new run.
//
// Start fails with ErrAlreadyRunning if the server is running, or with the
// underlying bind error if the port is unavailable; in both cases the server
// state is unchanged.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.localAddr)
	if err != nil {
		return fmt.Errorf("relay: bind %s: %w", s.localAddr, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.listener = ln
	s.cancel = cancel
	s.running = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.acceptLoop(ctx, ln)
	}()

	logger.Info("listening", "local", ln.Addr().String(), "remote", s.remoteAddr)
	return nil
}

// Stop quiesces the server: it cancels the shared context, closes the
// listener to unblock a pending accept, and then waits for the accept loop
// and every tracked session to finish tearing down. When Stop returns, no
// socket or goroutine created by this server remains and the local port can
// be rebound immediately. Stop on a stopped server returns at once.
func (s *Server) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	logger.Info("stopping", "local", s.listener.Addr().String())
	s.cancel()
	s.listener.Close()
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	s.running = false
	s.listener = nil
	s.cancel = nil
	s.mu.Unlock()
	logger.Info("stopped")
}

// IsRunning reports whether the server currently has a bound listener.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ActiveSessions returns the number of sessions currently relaying.
func (s *Server) ActiveSessions() int {
	return int(s.active.Load())
}

// CanRebind probes whether the local port could be bound right now by taking
// and immediately releasing a throwaway listener. It is a convenience for
// callers that want to detect port contention up front; Start still performs
// its own race-free bind.
func (s *Server) CanRebind() bool {
	ln, err := net.Listen("tcp", s.localAddr)
	if err != nil {
		return false
	}
	ln.Close()
	return true
}
