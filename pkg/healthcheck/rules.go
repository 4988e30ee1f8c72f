package healthcheck

import (
	"math/rand"
	"sync"
	"time"

	"github.com/porter-dev/ams-assistant/api/server/types"
)

// DefaultBackendLatencyProbability is the chance that the backend latency
// rule fires on a given run.
const DefaultBackendLatencyProbability = 0.3

// Rule is one independent predicate over an instance. Evaluate returns the
// human-readable issue and true when the rule fires.
type Rule struct {
	Name     string
	Evaluate func(instance *types.Instance) (string, bool)
}

// RandSource yields uniform draws in [0, 1).
type RandSource interface {
	Float64() float64
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource returns a goroutine-safe source. A zero seed is replaced with
// the current time.
func NewRandSource(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Float64()
}

// FixedRandSource always returns the same draw.
type FixedRandSource float64

func (f FixedRandSource) Float64() float64 {
	return float64(f)
}

func DegradedStatusRule() Rule {
	return Rule{
		Name: "degraded-status",
		Evaluate: func(instance *types.Instance) (string, bool) {
			if instance.Status == types.InstanceStatusDegraded {
				return "Instance status is Degraded.", true
			}

			return "", false
		},
	}
}

// JobFailureRule reports job as failed on the named instance whenever that
// instance runs it.
func JobFailureRule(instanceID, job string) Rule {
	return Rule{
		Name: "job-failure",
		Evaluate: func(instance *types.Instance) (string, bool) {
			if instance.ID == instanceID && instance.RunsJob(job) {
				return job + " job failed on this instance.", true
			}

			return "", false
		},
	}
}

// ServiceLatencyRule reports high latency for service on the named instance
// when a draw from rng is below probability.
func ServiceLatencyRule(instanceID, service string, rng RandSource, probability float64) Rule {
	return Rule{
		Name: "service-latency",
		Evaluate: func(instance *types.Instance) (string, bool) {
			if instance.ID != instanceID || !instance.HostsService(service) {
				return "", false
			}

			if rng.Float64() < probability {
				return service + " service experiencing high latency.", true
			}

			return "", false
		},
	}
}

// DefaultRules are the dashboard's checks, in evaluation order.
func DefaultRules(rng RandSource, probability float64) []Rule {
	return []Rule{
		DegradedStatusRule(),
		JobFailureRule("Prod-EU-West-1", "OrderSync"),
		ServiceLatencyRule("Prod-US-East-1", "Backend", rng, probability),
	}
}
