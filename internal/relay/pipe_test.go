package relay

import (
	"bytes"
	"context"
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCopyConnForwardsInOrder(t *testing.T) {
	srcNear, srcFar := net.Pipe()
	dstNear, dstFar := net.Pipe()
	defer srcNear.Close()
	defer dstFar.Close()

	var copied atomic.Int64
	done := make(chan struct{})
	go func() {
		copyConn(context.Background(), dstNear, srcFar, &copied, "test", "src->dst")
		close(done)
	}()

	chunks := [][]byte{
		[]byte("first"),
		[]byte("second"),
		bytes.Repeat([]byte{0xAB}, 1024),
	}
	var want bytes.Buffer
	got := make(chan []byte, 1)
	go func() {
		data, _ := io.ReadAll(dstFar)
		got <- data
	}()

	for _, chunk := range chunks {
		_, err := srcNear.Write(chunk)
		require.NoError(t, err)
		want.Write(chunk)
	}
	srcNear.Close() // EOF ends the pipe normally

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pipe did not stop on source EOF")
	}
	dstNear.Close()

	require.Equal(t, want.Bytes(), <-got)
	require.Equal(t, int64(want.Len()), copied.Load())
}

func TestCopyConnStopsOnCancel(t *testing.T) {
	srcNear, srcFar := net.Pipe()
	dstNear, dstFar := net.Pipe()
	defer srcNear.Close()
	defer dstNear.Close()
	defer dstFar.Close()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		copyConn(ctx, dstNear, srcFar, &atomic.Int64{}, "test", "src->dst")
		close(done)
	}()

	// The pipe is blocked in Read. Cancel and close the socket the way the
	// session watcher does; the pipe must come back promptly.
	cancel()
	srcFar.Close()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pipe did not stop after cancellation")
	}
}
