// Package session keeps the state of a single dashboard page view: the
// reminders the user set and the results last shown. Nothing is persisted;
// a page reload starts a new session.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/porter-dev/ams-assistant/api/server/types"
)

const DefaultTTL = 12 * time.Hour

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id has the shape produced by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type state struct {
	reminders []*types.Reminder
	analysis  *types.TicketAnalysis
	report    *types.HealthReport
	lastSeen  time.Time
}

// Snapshot is a read-only copy of a session's state.
type Snapshot struct {
	Reminders    []*types.Reminder
	Analysis     *types.TicketAnalysis
	HealthReport *types.HealthReport
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*state
	ttl      time.Duration
	now      func() time.Time
}

type StoreOptions struct {
	// TTL is the idle time after which Evict drops a session.
	TTL time.Duration
	Now func() time.Time
}

func NewStore(opts StoreOptions) *Store {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Store{
		sessions: make(map[string]*state),
		ttl:      opts.TTL,
		now:      opts.Now,
	}
}

// touch returns the state for id, creating it. Callers hold s.mu.
func (s *Store) touch(id string) *state {
	st, ok := s.sessions[id]

	if !ok {
		st = &state{}
		s.sessions[id] = st
	}

	st.lastSeen = s.now()

	return st
}

// AddReminder appends a reminder stamped with the current time. Text that is
// empty after trimming is ignored and false is returned.
func (s *Store) AddReminder(id, text string) (*types.Reminder, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.touch(id)

	r := &types.Reminder{
		Text:      text,
		CreatedAt: s.now(),
	}

	st.reminders = append(st.reminders, r)

	c := *r

	return &c, true
}

// Reminders returns a copy of the session's reminders in append order.
func (s *Store) Reminders(id string) []*types.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]

	if !ok {
		return []*types.Reminder{}
	}

	st.lastSeen = s.now()

	return copyReminders(st.reminders)
}

func (s *Store) SetAnalysis(id string, analysis *types.TicketAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(id).analysis = analysis
}

func (s *Store) SetHealthReport(id string, report *types.HealthReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch(id).report = report
}

func (s *Store) Snapshot(id string) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]

	if !ok {
		return &Snapshot{Reminders: []*types.Reminder{}}
	}

	st.lastSeen = s.now()

	return &Snapshot{
		Reminders:    copyReminders(st.reminders),
		Analysis:     st.analysis,
		HealthReport: st.report,
	}
}

// Evict drops sessions idle for longer than the TTL and returns how many were
// removed.
func (s *Store) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0

	for id, st := range s.sessions {
		if st.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func copyReminders(reminders []*types.Reminder) []*types.Reminder {
	res := make([]*types.Reminder, 0, len(reminders))

	for _, r := range reminders {
		c := *r
		res = append(res, &c)
	}

	return res
}
