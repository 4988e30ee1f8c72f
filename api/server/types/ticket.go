package types

import "time"

type TicketPriority string

const (
	TicketPriorityCritical TicketPriority = "Critical"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityMedium   TicketPriority = "Medium"
	TicketPriorityLow      TicketPriority = "Low"
)

type SeverityType string

const (
	SeverityCritical SeverityType = "Critical"
	SeverityHigh     SeverityType = "High"
	SeverityMedium   SeverityType = "Medium"
	SeverityLow      SeverityType = "Low"
)

type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "Open"
	TicketStatusClosed TicketStatus = "Closed"
)

type Ticket struct {
	ID              string         `json:"id"`
	Priority        TicketPriority `json:"priority"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Status          TicketStatus   `json:"status"`
	AssignedTo      string         `json:"assigned_to"`
	CreatedAt       time.Time      `json:"created_at"`
	Severity        SeverityType   `json:"severity"`
	AffectedService string         `json:"affected_service"`
}

// IsUrgent reports whether the ticket priority is shown as urgent on the
// dashboard.
func (t *Ticket) IsUrgent() bool {
	return t.Priority == TicketPriorityHigh || t.Priority == TicketPriorityCritical
}

func (t *Ticket) Copy() *Ticket {
	c := *t
	return &c
}

type ListTicketsResponse struct {
	Tickets []*Ticket `json:"tickets"`
}

type SearchTicketRequest struct {
	Query string `schema:"query" form:"required"`
}

type AnalyzeTicketRequest struct {
	Query     string `json:"query" schema:"query" form:"required"`
	SessionID string `json:"session_id" schema:"session_id"`
}

// TicketAnalysis is the outcome of looking up a ticket, matching it against
// the knowledge base and asking the text-generation service for advice.
type TicketAnalysis struct {
	Ticket           *Ticket         `json:"ticket"`
	SimilarIncidents []*PastIncident `json:"similar_incidents"`
	Prompt           string          `json:"prompt"`

	// Recommendation is the raw model output, or a fixed failure message when
	// RecommendationFailed is set. It must be escaped before display.
	Recommendation       string `json:"recommendation"`
	RecommendationFailed bool   `json:"recommendation_failed"`
}
