package healthcheck

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/logger"
	"github.com/porter-dev/ams-assistant/internal/repository"
)

type CheckerOptions struct {
	// Rules defaults to DefaultRules with a time-seeded source.
	Rules []Rule

	// Delay is waited before evaluating, to mimic a slow remote check.
	Delay time.Duration

	Now    func() time.Time
	Logger *logger.Logger
}

type Checker struct {
	instances repository.InstanceRepository
	rules     []Rule
	delay     time.Duration
	now       func() time.Time
	logger    *logger.Logger

	mu     sync.Mutex
	latest *types.HealthReport
}

func NewChecker(instances repository.InstanceRepository, opts CheckerOptions) *Checker {
	if opts.Rules == nil {
		opts.Rules = DefaultRules(NewRandSource(0), DefaultBackendLatencyProbability)
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	return &Checker{
		instances: instances,
		rules:     opts.Rules,
		delay:     opts.Delay,
		now:       opts.Now,
		logger:    opts.Logger,
	}
}

// Run evaluates every rule against every instance and records the report as
// the latest one.
func (c *Checker) Run(ctx context.Context) (*types.HealthReport, error) {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	instances, err := c.instances.ListInstances(ctx)

	if err != nil {
		return nil, fmt.Errorf("error listing instances: %w", err)
	}

	report := &types.HealthReport{
		CheckedAt:             c.now(),
		Results:               make([]*types.InstanceHealth, 0, len(instances)),
		TicketRecommendations: make([]string, 0),
	}

	for _, instance := range instances {
		res := c.evaluate(instance)

		report.Results = append(report.Results, res)

		if res.TicketNeeded {
			report.TicketRecommendations = append(report.TicketRecommendations, TicketRecommendation(res))
		}
	}

	c.logger.Debug().Caller().Msgf("health check over %d instances flagged %d", len(instances), len(report.TicketRecommendations))

	c.mu.Lock()
	c.latest = report
	c.mu.Unlock()

	return report, nil
}

// Latest returns the report of the most recent successful run, or nil.
func (c *Checker) Latest() *types.HealthReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.latest
}

func (c *Checker) evaluate(instance *types.Instance) *types.InstanceHealth {
	res := &types.InstanceHealth{
		InstanceID: instance.ID,
		Status:     types.HealthStatusHealthy,
		Issues:     make([]string, 0),
	}

	for _, rule := range c.rules {
		if issue, fired := rule.Evaluate(instance); fired {
			res.Issues = append(res.Issues, issue)
			res.TicketNeeded = true
		}
	}

	if len(res.Issues) > 0 {
		res.Status = types.HealthStatusIssuesFound
	}

	return res
}

// TicketRecommendation is the sentence suggesting a support ticket for a
// flagged instance.
func TicketRecommendation(res *types.InstanceHealth) string {
	return fmt.Sprintf("AI Agent recommends raising a support ticket for %s due to: %s", res.InstanceID, strings.Join(res.Issues, ", "))
}
