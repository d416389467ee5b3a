package ssh

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeContext answers the context.Context methods from a plain context;
// nothing else is used.
type fakeContext struct {
	gossh.Context
	ctx context.Context
}

func (c fakeContext) Deadline() (time.Time, bool) { return c.ctx.Deadline() }
func (c fakeContext) Done() <-chan struct{}       { return c.ctx.Done() }
func (c fakeContext) Err() error                  { return c.ctx.Err() }
func (c fakeContext) Value(key any) any           { return c.ctx.Value(key) }

type fakeSession struct {
	gossh.Session
	ctx fakeContext
	in  io.Reader
	out *bytes.Buffer
}

func (s *fakeSession) Context() gossh.Context      { return s.ctx }
func (s *fakeSession) Read(b []byte) (int, error)  { return s.in.Read(b) }
func (s *fakeSession) Write(b []byte) (int, error) { return s.out.Write(b) }

func newFakeSession(ctx context.Context) *fakeSession {
	return &fakeSession{
		ctx: fakeContext{ctx: ctx},
		in:  bytes.NewBufferString("q"),
		out: &bytes.Buffer{},
	}
}

func TestSessionTtyPassesBytesThrough(t *testing.T) {
	s := newFakeSession(context.Background())
	tty := NewSessionTty(s, gossh.Pty{}, nil)

	buf := make([]byte, 4)
	n, err := tty.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "q", string(buf[:n]))

	_, err = tty.Write([]byte("\x1b[2J"))
	require.NoError(t, err)
	assert.Equal(t, "\x1b[2J", s.out.String())
}

func TestSessionTtyResize(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	winCh := make(chan gossh.Window)
	tty := NewSessionTty(newFakeSession(ctx), gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	ws, err := tty.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, tcell.WindowSize{Width: 80, Height: 24}, ws)

	called := make(chan struct{}, 1)
	tty.NotifyResize(func() { called <- struct{}{} })
	tty.NotifyResize(func() { called <- struct{}{} }) // replaces, no second watcher

	winCh <- gossh.Window{Width: 120, Height: 40}
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("resize callback not called")
	}
	ws, _ = tty.WindowSize()
	assert.Equal(t, tcell.WindowSize{Width: 120, Height: 40}, ws)

	require.NoError(t, tty.Stop())
	winCh <- gossh.Window{Width: 100, Height: 30}
	select {
	case <-called:
		t.Fatal("callback called after Stop")
	case <-time.After(50 * time.Millisecond):
	}

	cancel() // session over: the watcher exits
}

func TestSessionTtyDrainWakesRead(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pr, pw := io.Pipe()
	s := newFakeSession(ctx)
	s.in = pr
	tty := NewSessionTty(s, gossh.Pty{}, nil)
	require.NoError(t, tty.Start())

	type result struct {
		n   int
		err error
	}
	read := func() <-chan result {
		ch := make(chan result, 1)
		go func() {
			buf := make([]byte, 8)
			n, err := tty.Read(buf)
			ch <- result{n, err}
		}()
		return ch
	}

	// The client is silent, so Read blocks until Drain.
	pendingRead := read()
	select {
	case r := <-pendingRead:
		t.Fatalf("read returned early: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}
	require.NoError(t, tty.Drain())
	select {
	case r := <-pendingRead:
		assert.ErrorIs(t, r.err, io.EOF)
	case <-time.After(time.Second):
		t.Fatal("Drain did not wake the pending read")
	}

	// Restarting re-arms Read and nothing typed is lost.
	require.NoError(t, tty.Start())
	go func() { _, _ = pw.Write([]byte("yes")) }()
	select {
	case r := <-read():
		require.NoError(t, r.err)
		assert.Equal(t, 3, r.n)
	case <-time.After(time.Second):
		t.Fatal("read after Start got nothing")
	}

	// Closing the session input ends the pump.
	require.NoError(t, pw.Close())
	select {
	case r := <-read():
		assert.ErrorIs(t, r.err, io.EOF)
	case <-time.After(time.Second):
		t.Fatal("read after close got nothing")
	}
}
