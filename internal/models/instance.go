package models

import (
	"github.com/porter-dev/ams-assistant/api/server/types"
	"gorm.io/gorm"
)

type Instance struct {
	gorm.Model

	UniqueID string `gorm:"unique"`
	Status   types.InstanceStatus

	Components []InstanceComponent
}

// InstanceComponent is a job, service or flow running on an instance.
type InstanceComponent struct {
	gorm.Model

	InstanceID uint
	Kind       types.ComponentKind
	Position   int
	Name       string
}

func NewInstanceFromAPIType(i *types.Instance) *Instance {
	res := &Instance{
		UniqueID: i.ID,
		Status:   i.Status,
	}

	add := func(kind types.ComponentKind, names []string) {
		for pos, name := range names {
			res.Components = append(res.Components, InstanceComponent{
				Kind:     kind,
				Position: pos,
				Name:     name,
			})
		}
	}

	add(types.ComponentKindJob, i.Jobs)
	add(types.ComponentKindService, i.Services)
	add(types.ComponentKindFlow, i.Flows)

	return res
}

// ToAPIType expects Components to be preloaded in position order.
func (i *Instance) ToAPIType() *types.Instance {
	res := &types.Instance{
		ID:       i.UniqueID,
		Status:   i.Status,
		Jobs:     []string{},
		Services: []string{},
		Flows:    []string{},
	}

	for _, c := range i.Components {
		switch c.Kind {
		case types.ComponentKindJob:
			res.Jobs = append(res.Jobs, c.Name)
		case types.ComponentKindService:
			res.Services = append(res.Services, c.Name)
		case types.ComponentKindFlow:
			res.Flows = append(res.Flows, c.Name)
		}
	}

	return res
}
