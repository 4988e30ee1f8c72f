package healthcheck

import (
	"context"
	"testing"
	"time"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/repository/memory"
	"github.com/porter-dev/ams-assistant/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(rng RandSource, delay time.Duration) *Checker {
	repo := memory.NewRepository(seed.Default())

	return NewChecker(repo.Instance, CheckerOptions{
		Rules: DefaultRules(rng, DefaultBackendLatencyProbability),
		Delay: delay,
		Now: func() time.Time {
			return time.Date(2025, 7, 8, 13, 0, 0, 0, time.UTC)
		},
	})
}

func resultFor(t *testing.T, report *types.HealthReport, id string) *types.InstanceHealth {
	t.Helper()

	for _, r := range report.Results {
		if r.InstanceID == id {
			return r
		}
	}

	t.Fatalf("no result for instance %s", id)

	return nil
}

func TestEUWest1AlwaysFlagged(t *testing.T) {
	for _, draw := range []float64{0, 0.29, 0.3, 0.99} {
		checker := newTestChecker(FixedRandSource(draw), 0)

		report, err := checker.Run(context.Background())
		require.NoError(t, err)

		eu := resultFor(t, report, "Prod-EU-West-1")

		assert.Equal(t, types.HealthStatusIssuesFound, eu.Status)
		assert.True(t, eu.TicketNeeded)
		assert.Equal(t, []string{
			"Instance status is Degraded.",
			"OrderSync job failed on this instance.",
		}, eu.Issues)
	}
}

func TestBackendLatencyFollowsDraw(t *testing.T) {
	checker := newTestChecker(FixedRandSource(0.1), 0)

	report, err := checker.Run(context.Background())
	require.NoError(t, err)

	us := resultFor(t, report, "Prod-US-East-1")
	assert.Equal(t, types.HealthStatusIssuesFound, us.Status)
	assert.Equal(t, []string{"Backend service experiencing high latency."}, us.Issues)

	assert.Equal(t, []string{
		"AI Agent recommends raising a support ticket for Prod-US-East-1 due to: Backend service experiencing high latency.",
		"AI Agent recommends raising a support ticket for Prod-EU-West-1 due to: Instance status is Degraded., OrderSync job failed on this instance.",
	}, report.TicketRecommendations)

	checker = newTestChecker(FixedRandSource(0.3), 0)

	report, err = checker.Run(context.Background())
	require.NoError(t, err)

	us = resultFor(t, report, "Prod-US-East-1")
	assert.Equal(t, types.HealthStatusHealthy, us.Status)
	assert.Empty(t, us.Issues)
	assert.False(t, us.TicketNeeded)
	assert.Len(t, report.TicketRecommendations, 1)
}

func TestAsiaAlwaysHealthy(t *testing.T) {
	checker := newTestChecker(FixedRandSource(0), 0)

	report, err := checker.Run(context.Background())
	require.NoError(t, err)

	asia := resultFor(t, report, "Prod-Asia-SE-1")
	assert.Equal(t, types.HealthStatusHealthy, asia.Status)
	assert.False(t, asia.TicketNeeded)
}

func TestResultsFollowInstanceOrder(t *testing.T) {
	checker := newTestChecker(FixedRandSource(0.5), 0)

	report, err := checker.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	assert.Equal(t, "Prod-US-East-1", report.Results[0].InstanceID)
	assert.Equal(t, "Prod-EU-West-1", report.Results[1].InstanceID)
	assert.Equal(t, "Prod-Asia-SE-1", report.Results[2].InstanceID)
	assert.Equal(t, time.Date(2025, 7, 8, 13, 0, 0, 0, time.UTC), report.CheckedAt)
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewRandSource(42)
	b := NewRandSource(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestDelayHonoursCancellation(t *testing.T) {
	checker := newTestChecker(FixedRandSource(0), time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	report, err := checker.Run(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, report)
	assert.Nil(t, checker.Latest())
}

func TestLatestTracksLastRun(t *testing.T) {
	checker := newTestChecker(FixedRandSource(0), time.Millisecond)

	assert.Nil(t, checker.Latest())

	report, err := checker.Run(context.Background())
	require.NoError(t, err)

	assert.Same(t, report, checker.Latest())
}

func TestCustomRules(t *testing.T) {
	repo := memory.NewRepository(seed.Default())

	checker := NewChecker(repo.Instance, CheckerOptions{
		Rules: []Rule{JobFailureRule("Prod-Asia-SE-1", "InventoryUpdate")},
	})

	report, err := checker.Run(context.Background())
	require.NoError(t, err)

	asia := resultFor(t, report, "Prod-Asia-SE-1")
	assert.Equal(t, []string{"InventoryUpdate job failed on this instance."}, asia.Issues)

	eu := resultFor(t, report, "Prod-EU-West-1")
	assert.Empty(t, eu.Issues, "degraded rule is not part of the custom set")
}
