// Package host serves the arcade over SSH: one arcade per connection, each
// on its own tcell screen.
package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindful-arcade/internal/arcade"
	"mindful-arcade/internal/catalog"
	"mindful-arcade/internal/generate"
	internalssh "mindful-arcade/internal/ssh"
)

// ErrFull is returned when every session slot is taken.
var ErrFull = errors.New("arcade is full")

const (
	defaultTerm   = "xterm-256color"
	maxNameBytes  = 16
	anonymousName = "guest"
)

// allowedTerms are the TERM values we hand to terminfo. Anything else falls
// back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// termFor picks the terminal type for a session: the PTY request first,
// then the TERM environment variable.
func termFor(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, env := range environ {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		return defaultTerm
	}
	return term
}

// Options configures a Server.
type Options struct {
	MaxSessions int
	Seed        int64 // 0 gives every session a fresh random seed
	Settings    catalog.Settings
	Catalog     *catalog.Catalog // nil means catalog.Default()
}

// Conn describes one connected player.
type Conn struct {
	ID      uuid.UUID
	Name    string
	Term    string
	Started time.Time
}

// Server tracks live sessions and runs an arcade for each.
type Server struct {
	opts Options
	log  *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]Conn
	served   int64
}

// New creates a Server.
func New(opts Options, log *zap.Logger) *Server {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.MaxSessions < 1 {
		opts.MaxSessions = 1
	}
	return &Server{
		opts:     opts,
		log:      log,
		sessions: make(map[uuid.UUID]Conn),
	}
}

// Sessions lists connected players, oldest first.
func (s *Server) Sessions() []Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Conn, 0, len(s.sessions))
	for _, c := range s.sessions {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Conn) int { return a.Started.Compare(b.Started) })
	return out
}

// admit reserves a session slot.
func (s *Server) admit(name, term string) (Conn, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.opts.MaxSessions {
		return Conn{}, 0, ErrFull
	}
	c := Conn{ID: uuid.New(), Name: name, Term: term, Started: time.Now()}
	s.sessions[c.ID] = c
	s.served++
	return c, s.served, nil
}

func (s *Server) release(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// Handle is the gliderlabs SSH handler for one connection. It blocks for
// the duration of the connection so the SSH session stays open.
func (s *Server) Handle(sess gossh.Session) {
	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "The arcade needs a terminal. Connect with: ssh -t -p <port> <host>")
		_ = sess.Exit(1)
		return
	}

	name := sanitizeName(sess.User())
	if name == "" {
		name = anonymousName
	}
	term := termFor(pty.Term, sess.Environ())

	conn, n, err := s.admit(name, term)
	if err != nil {
		s.log.Warn("session refused", zap.String("name", name), zap.String("remote", sess.RemoteAddr().String()), zap.Error(err))
		fmt.Fprintln(sess, "The arcade is full right now. Please try again in a few minutes.")
		_ = sess.Exit(1)
		return
	}
	defer s.release(conn.ID)

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(sess, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		s.log.Error("terminal setup failed", zap.Stringer("session", conn.ID), zap.Error(err))
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		s.log.Error("screen init failed", zap.Stringer("session", conn.ID), zap.Error(err))
		fmt.Fprintf(sess, "Screen init failed: %v\n", err)
		return
	}

	s.log.Info("session connected",
		zap.Stringer("session", conn.ID),
		zap.String("name", name),
		zap.String("term", term),
		zap.String("remote", sess.RemoteAddr().String()),
	)
	_ = s.serve(sess.Context(), conn, n, screen)
}

// serve runs one arcade on screen until the player leaves or ctx ends. It
// finalises the screen before returning.
func (s *Server) serve(ctx context.Context, conn Conn, n int64, screen tcell.Screen) error {
	defer screen.Fini()

	log := s.log.With(zap.Stringer("session", conn.ID))
	var seed int64
	if s.opts.Seed != 0 {
		seed = s.opts.Seed + n
	}
	rng, err := generate.NewRand(seed)
	if err != nil {
		log.Error("seed failed", zap.Error(err))
		return err
	}
	a := arcade.New(screen, arcade.Options{
		Catalog:  s.opts.Catalog,
		Settings: s.opts.Settings,
		Rand:     rng,
		Log:      log,
	})

	err = a.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	fields := []zap.Field{
		zap.Duration("duration", time.Since(conn.Started)),
		zap.Object("runs", a.RunLog()),
	}
	if err != nil {
		log.Error("session failed", append(fields, zap.Error(err))...)
		return err
	}
	log.Info("session disconnected", fields...)
	return nil
}
