// Package ssh adapts gliderlabs/ssh sessions to tcell terminals.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty backed by a gliderlabs/ssh session.
// Each connected player gets their own SessionTty → tcell.Screen pair.
//
// A pump goroutine owns session reads so that Drain can wake a Read that
// is waiting on a silent client.
type SessionTty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func() // resize callback registered by tcell
	watch   sync.Once

	pump    sync.Once
	input   chan []byte // closed when the session read fails
	readErr error       // set before input is closed
	pending []byte      // rest of a chunk larger than the caller's buffer
	drained chan struct{}
}

// NewSessionTty wraps a gliderlabs SSH session as a tcell Tty.
// pty holds the initial window size; winCh delivers subsequent resize events.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
		input:   make(chan []byte),
		drained: make(chan struct{}),
	}
}

// Read returns keyboard input from the session. After Drain it returns
// io.EOF until Start is called again.
func (t *SessionTty) Read(b []byte) (int, error) {
	if len(t.pending) > 0 {
		n := copy(b, t.pending)
		t.pending = t.pending[n:]
		return n, nil
	}
	t.pump.Do(func() { go t.readLoop() })

	t.mu.Lock()
	drained := t.drained
	t.mu.Unlock()
	select {
	case <-drained:
		return 0, io.EOF
	case chunk, ok := <-t.input:
		if !ok {
			return 0, t.readErr
		}
		n := copy(b, chunk)
		t.pending = chunk[n:]
		return n, nil
	}
}

func (t *SessionTty) readLoop() {
	done := t.session.Context().Done()
	buf := make([]byte, 256)
	for {
		n, err := t.session.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case t.input <- chunk:
			case <-done:
				err = io.EOF
			}
		}
		if err != nil {
			t.readErr = err
			close(t.input)
			return
		}
	}
}

// Write writes rendered output to the SSH session's stdout.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH session channel, which also ends the read pump.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start re-arms Read after a Drain. The SSH channel is already open.
func (t *SessionTty) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-t.drained:
		t.drained = make(chan struct{})
	default:
	}
	return nil
}

// Stop drops the resize callback. The channel itself belongs to the
// server handler goroutine.
func (t *SessionTty) Stop() error {
	t.mu.Lock()
	t.cb = nil
	t.mu.Unlock()
	return nil
}

// Drain wakes a pending Read, which returns io.EOF. Input that arrives
// afterwards stays queued for the next Start.
func (t *SessionTty) Drain() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-t.drained:
	default:
		close(t.drained)
	}
	return nil
}

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers a callback invoked on every window resize event.
// The first call starts a goroutine that drains the window-change channel
// until the session ends.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() { go t.watchResize() })
}

func (t *SessionTty) watchResize() {
	done := t.session.Context().Done()
	for {
		select {
		case <-done:
			return
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}
}
