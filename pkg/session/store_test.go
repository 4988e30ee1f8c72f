package session

import (
	"sync"
	"testing"
	"time"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestStore(clock *fakeClock) *Store {
	return NewStore(StoreOptions{TTL: time.Hour, Now: clock.Now})
}

func TestAddReminderAppendsInOrder(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 7, 8, 9, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)
	id := NewID()

	r, ok := store.AddReminder(id, "Follow up on INC001 by EOD")
	require.True(t, ok)
	assert.Equal(t, "Follow up on INC001 by EOD", r.Text)
	assert.Equal(t, clock.Now(), r.CreatedAt)

	clock.Advance(time.Minute)

	_, ok = store.AddReminder(id, "  page the DBA  ")
	require.True(t, ok)

	reminders := store.Reminders(id)
	require.Len(t, reminders, 2)
	assert.Equal(t, "Follow up on INC001 by EOD", reminders[0].Text)
	assert.Equal(t, "  page the DBA  ", reminders[1].Text, "text is kept as submitted")
	assert.True(t, reminders[1].CreatedAt.After(reminders[0].CreatedAt))
}

func TestBlankReminderIsIgnored(t *testing.T) {
	store := newTestStore(&fakeClock{now: time.Now()})
	id := NewID()

	_, ok := store.AddReminder(id, "first")
	require.True(t, ok)

	for _, text := range []string{"", " ", "\t\n  "} {
		r, ok := store.AddReminder(id, text)
		assert.False(t, ok)
		assert.Nil(t, r)
	}

	assert.Len(t, store.Reminders(id), 1)
}

func TestRemindersAreSessionScoped(t *testing.T) {
	store := newTestStore(&fakeClock{now: time.Now()})

	a, b := NewID(), NewID()

	store.AddReminder(a, "for a")

	assert.Len(t, store.Reminders(a), 1)
	assert.Empty(t, store.Reminders(b))
}

func TestRemindersReturnsCopies(t *testing.T) {
	store := newTestStore(&fakeClock{now: time.Now()})
	id := NewID()

	store.AddReminder(id, "original")

	store.Reminders(id)[0].Text = "changed"

	assert.Equal(t, "original", store.Reminders(id)[0].Text)
}

func TestSnapshotCarriesLastResults(t *testing.T) {
	store := newTestStore(&fakeClock{now: time.Now()})
	id := NewID()

	analysis := &types.TicketAnalysis{Ticket: &types.Ticket{ID: "INC001"}}
	report := &types.HealthReport{}

	store.SetAnalysis(id, analysis)
	store.SetHealthReport(id, report)
	store.AddReminder(id, "r")

	snap := store.Snapshot(id)

	assert.Same(t, analysis, snap.Analysis)
	assert.Same(t, report, snap.HealthReport)
	assert.Len(t, snap.Reminders, 1)

	empty := store.Snapshot(NewID())
	assert.Nil(t, empty.Analysis)
	assert.Empty(t, empty.Reminders)
}

func TestEvictDropsIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := newTestStore(clock)

	idle, active := NewID(), NewID()

	store.AddReminder(idle, "idle")
	store.AddReminder(active, "active")

	clock.Advance(45 * time.Minute)
	store.Reminders(active)

	clock.Advance(30 * time.Minute)

	assert.Equal(t, 1, store.Evict())
	assert.Equal(t, 1, store.Len())
	assert.Empty(t, store.Reminders(idle))
	assert.Len(t, store.Reminders(active), 1)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(NewID()))
	assert.False(t, ValidID("not-a-session"))
	assert.False(t, ValidID(""))
}

func TestConcurrentAdds(t *testing.T) {
	store := newTestStore(&fakeClock{now: time.Now()})
	id := NewID()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			store.AddReminder(id, "reminder")
		}()
	}

	wg.Wait()

	assert.Len(t, store.Reminders(id), 50)
}
