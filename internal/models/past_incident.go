package models

import (
	"github.com/porter-dev/ams-assistant/api/server/types"
	"gorm.io/gorm"
)

// PastIncident is a knowledge-base entry. Keywords and actions are ordered
// child rows.
type PastIncident struct {
	gorm.Model

	UniqueID string `gorm:"unique"`
	Summary  string

	Keywords []PastIncidentKeyword
	Actions  []PastIncidentAction
}

type PastIncidentKeyword struct {
	gorm.Model

	PastIncidentID uint
	Position       int
	Keyword        string
}

type PastIncidentAction struct {
	gorm.Model

	PastIncidentID uint
	Position       int
	Action         string
}

func NewPastIncidentFromAPIType(p *types.PastIncident) *PastIncident {
	res := &PastIncident{
		UniqueID: p.ID,
		Summary:  p.Summary,
	}

	for i, kw := range p.Keywords {
		res.Keywords = append(res.Keywords, PastIncidentKeyword{
			Position: i,
			Keyword:  kw,
		})
	}

	for i, action := range p.RecommendedActions {
		res.Actions = append(res.Actions, PastIncidentAction{
			Position: i,
			Action:   action,
		})
	}

	return res
}

// ToAPIType expects Keywords and Actions to be preloaded in position order.
func (p *PastIncident) ToAPIType() *types.PastIncident {
	res := &types.PastIncident{
		ID:                 p.UniqueID,
		Summary:            p.Summary,
		Keywords:           make([]string, 0, len(p.Keywords)),
		RecommendedActions: make([]string, 0, len(p.Actions)),
	}

	for _, kw := range p.Keywords {
		res.Keywords = append(res.Keywords, kw.Keyword)
	}

	for _, action := range p.Actions {
		res.RecommendedActions = append(res.RecommendedActions, action.Action)
	}

	return res
}
