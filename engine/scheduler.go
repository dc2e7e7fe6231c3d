package engine

import (
	"time"

	"github.com/golang/glog"
)

// MaxCatchUp caps the ticks returned by a single Due call. Time beyond the
// cap is dropped so a stalled frame never fast-forwards the game.
const MaxCatchUp = 3

// Scheduler turns elapsed clock time into a count of fixed-length ticks
type Scheduler struct {
	clock    Clock
	interval time.Duration
	next     time.Time
	ticks    uint64
}

// NewScheduler creates a scheduler running at tps ticks per second. The
// first tick is due one interval after creation.
func NewScheduler(clock Clock, tps int) *Scheduler {
	if tps < 1 {
		tps = 1
	}
	interval := time.Second / time.Duration(tps)
	return &Scheduler{
		clock:    clock,
		interval: interval,
		next:     clock.Now().Add(interval),
	}
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Ticks returns the number of ticks handed out so far
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Due returns how many ticks have elapsed since the previous call
func (s *Scheduler) Due() int {
	now := s.clock.Now()
	n := 0
	for !now.Before(s.next) {
		n++
		s.next = s.next.Add(s.interval)
		if n == MaxCatchUp {
			if !now.Before(s.next) {
				glog.V(1).Infof("scheduler: behind by %v, skipping", now.Sub(s.next))
				s.next = now.Add(s.interval)
			}
			break
		}
	}
	s.ticks += uint64(n)
	return n
}

// Reset restarts the interval from now, e.g. after the window was hidden
func (s *Scheduler) Reset() {
	s.next = s.clock.Now().Add(s.interval)
}
