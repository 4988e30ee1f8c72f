package types

import "time"

type InstanceStatus string

const (
	InstanceStatusHealthy  InstanceStatus = "Healthy"
	InstanceStatusDegraded InstanceStatus = "Degraded"
)

// ComponentKind distinguishes the named things running on an instance.
type ComponentKind string

const (
	ComponentKindJob     ComponentKind = "job"
	ComponentKindService ComponentKind = "service"
	ComponentKindFlow    ComponentKind = "flow"
)

type Instance struct {
	ID       string         `json:"id"`
	Status   InstanceStatus `json:"status"`
	Jobs     []string       `json:"jobs"`
	Services []string       `json:"services"`
	Flows    []string       `json:"flows"`
}

func (i *Instance) RunsJob(job string) bool {
	return contains(i.Jobs, job)
}

func (i *Instance) HostsService(service string) bool {
	return contains(i.Services, service)
}

func (i *Instance) Copy() *Instance {
	return &Instance{
		ID:       i.ID,
		Status:   i.Status,
		Jobs:     append([]string(nil), i.Jobs...),
		Services: append([]string(nil), i.Services...),
		Flows:    append([]string(nil), i.Flows...),
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}

type ListInstancesResponse struct {
	Instances []*Instance `json:"instances"`
}

type HealthStatus string

const (
	HealthStatusHealthy     HealthStatus = "Healthy"
	HealthStatusIssuesFound HealthStatus = "Issues Found"
)

type InstanceHealth struct {
	InstanceID   string       `json:"instance_id"`
	Status       HealthStatus `json:"status"`
	Issues       []string     `json:"issues"`
	TicketNeeded bool         `json:"ticket_needed"`
}

type HealthReport struct {
	CheckedAt             time.Time         `json:"checked_at"`
	Results               []*InstanceHealth `json:"results"`
	TicketRecommendations []string          `json:"ticket_recommendations"`
}
