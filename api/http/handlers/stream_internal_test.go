package handlers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnClosed = errors.New("use of closed network connection")

type scriptedConn struct {
	frames chan struct{}
	closed chan struct{}
	once   sync.Once
	reads  atomic.Int32
}

func newScriptedConn() *scriptedConn {
	return &scriptedConn{frames: make(chan struct{}), closed: make(chan struct{})}
}

func (s *scriptedConn) ReadMessage() (int, []byte, error) {
	s.reads.Add(1)
	select {
	case <-s.frames:
		return 1, []byte("ping"), nil
	case <-s.closed:
		return 0, nil, errConnClosed
	}
}

func (s *scriptedConn) Close() { s.once.Do(func() { close(s.closed) }) }

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reader still running")
	}
}

func TestWatchClose_StopsBeforeConnIsReleased(t *testing.T) {
	conn := newScriptedConn()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := watchClose(conn, cancel)
	conn.frames <- struct{}{}
	conn.frames <- struct{}{}
	require.NoError(t, ctx.Err(), "client frames do not end the stream")

	conn.Close()
	waitDone(t, done)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	reads := conn.reads.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, reads, conn.reads.Load(), "no reads after the reader reported done")
}

func TestWatchClose_ClientGoneCancelsStream(t *testing.T) {
	conn := newScriptedConn()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn.Close()
	waitDone(t, watchClose(conn, cancel))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
