package types

import "strings"

// PastIncident is a knowledge-base entry describing a previously resolved
// incident.
type PastIncident struct {
	ID                 string   `json:"id"`
	Keywords           []string `json:"keywords"`
	Summary            string   `json:"summary"`
	RecommendedActions []string `json:"recommended_actions"`
}

// JoinedActions renders the recommended actions the way they appear in the
// prompt and on the dashboard.
func (p *PastIncident) JoinedActions() string {
	return strings.Join(p.RecommendedActions, "; ")
}

func (p *PastIncident) Copy() *PastIncident {
	return &PastIncident{
		ID:                 p.ID,
		Keywords:           append([]string(nil), p.Keywords...),
		Summary:            p.Summary,
		RecommendedActions: append([]string(nil), p.RecommendedActions...),
	}
}

type ListPastIncidentsResponse struct {
	Incidents []*PastIncident `json:"incidents"`
}
