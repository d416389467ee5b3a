package arcade

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"mindful-arcade/internal/round"
)

// GameStats summarises one game's rounds in a session.
type GameStats struct {
	Title     string
	Rounds    int
	Successes int
	Fails     int
	Timeouts  int
	BestLevel int // highest level cleared
	BestScore int
}

// RunLog records every finished round of one arcade session. It lives in
// memory only and is not safe for concurrent use.
type RunLog struct {
	Started time.Time
	games   map[string]*GameStats
	order   []string
}

// NewRunLog starts an empty log.
func NewRunLog(started time.Time) *RunLog {
	return &RunLog{Started: started, games: make(map[string]*GameStats)}
}

// Record is a round.Observer.
func (l *RunLog) Record(info round.Info, p round.Progress, r round.Result) {
	st, ok := l.games[info.ID]
	if !ok {
		st = &GameStats{Title: info.Title}
		l.games[info.ID] = st
		l.order = append(l.order, info.ID)
	}
	st.Rounds++
	switch r.Outcome {
	case round.OutcomeSuccess:
		st.Successes++
		st.BestLevel = max(st.BestLevel, p.Level)
	case round.OutcomeTimeout:
		st.Timeouts++
	default:
		st.Fails++
	}
	st.BestScore = max(st.BestScore, p.Score)
}

// Stats returns the stats for one game.
func (l *RunLog) Stats(id string) (GameStats, bool) {
	st, ok := l.games[id]
	if !ok {
		return GameStats{}, false
	}
	return *st, true
}

// Rounds is the number of rounds finished across every game.
func (l *RunLog) Rounds() int {
	n := 0
	for _, st := range l.games {
		n += st.Rounds
	}
	return n
}

// Best maps game IDs to the highest level cleared.
func (l *RunLog) Best() map[string]int {
	best := make(map[string]int, len(l.games))
	for id, st := range l.games {
		if st.BestLevel > 0 {
			best[id] = st.BestLevel
		}
	}
	return best
}

// Summary is the end-of-session report, one line per game played.
func (l *RunLog) Summary(now time.Time) []string {
	lines := []string{fmt.Sprintf("Played for %s", now.Sub(l.Started).Round(time.Second))}
	for _, id := range l.order {
		st := l.games[id]
		lines = append(lines, fmt.Sprintf("%-18s %2d rounds  ✓%d ✗%d ⏱%d  best level %d  score %d",
			st.Title, st.Rounds, st.Successes, st.Fails, st.Timeouts, st.BestLevel, st.BestScore))
	}
	return lines
}

// MarshalLogObject lets a run log be attached to a zap log line.
func (l *RunLog) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("rounds", l.Rounds())
	for _, id := range l.order {
		st := l.games[id]
		err := enc.AddObject(id, zapcore.ObjectMarshalerFunc(func(e zapcore.ObjectEncoder) error {
			e.AddInt("rounds", st.Rounds)
			e.AddInt("successes", st.Successes)
			e.AddInt("fails", st.Fails)
			e.AddInt("timeouts", st.Timeouts)
			e.AddInt("best_level", st.BestLevel)
			e.AddInt("best_score", st.BestScore)
			return nil
		}))
		if err != nil {
			return err
		}
	}
	return nil
}
