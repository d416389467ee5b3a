package round

import (
	"sync"
	"time"
)

// Timers is what the controller needs from a scheduler.
type Timers interface {
	// Schedule arranges for Fire(name, token) to be delivered after d,
	// replacing any pending timer with the same name.
	Schedule(name TimerName, token uint64, d time.Duration)
	Cancel(name TimerName)
	CancelAll()
}

type pendingTimer struct {
	timer *time.Timer
	seq   uint64
}

// Scheduler delivers timer events on a channel so the shell can handle
// them on the same goroutine as key presses.
type Scheduler struct {
	mu       sync.Mutex
	out      chan<- Event
	done     chan struct{}
	pending  map[TimerName]pendingTimer
	seq      uint64
	stopped  bool
	inflight sync.WaitGroup
}

// NewScheduler returns a scheduler that posts fired timers to out.
func NewScheduler(out chan<- Event) *Scheduler {
	return &Scheduler{
		out:     out,
		done:    make(chan struct{}),
		pending: make(map[TimerName]pendingTimer),
	}
}

func (s *Scheduler) Schedule(name TimerName, token uint64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if p, ok := s.pending[name]; ok {
		p.timer.Stop()
	}
	s.seq++
	seq := s.seq
	s.pending[name] = pendingTimer{
		timer: time.AfterFunc(d, func() { s.fire(name, token, seq) }),
		seq:   seq,
	}
}

func (s *Scheduler) fire(name TimerName, token, seq uint64) {
	s.mu.Lock()
	p, ok := s.pending[name]
	if s.stopped || !ok || p.seq != seq {
		// Replaced or cancelled after the runtime had already started us.
		s.mu.Unlock()
		return
	}
	delete(s.pending, name)
	s.inflight.Add(1)
	s.mu.Unlock()
	defer s.inflight.Done()

	select {
	case s.out <- Fire(name, token):
	case <-s.done:
	}
}

func (s *Scheduler) Cancel(name TimerName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[name]; ok {
		p.timer.Stop()
		delete(s.pending, name)
	}
}

func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAllLocked()
}

func (s *Scheduler) cancelAllLocked() {
	for name, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, name)
	}
}

// Pending reports how many timers are waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels every timer. Once Stop returns no event will be posted.
// Stop is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.cancelAllLocked()
	close(s.done)
	s.mu.Unlock()
	s.inflight.Wait()
}
