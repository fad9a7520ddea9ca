package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gadget statuses. DESTROYED is reachable only through the confirmed
// self-destruct flow; there is no transition out of it.
const (
	StatusAvailable      = "AVAILABLE"
	StatusDeployed       = "DEPLOYED"
	StatusDecommissioned = "DECOMMISSIONED"
	StatusDestroyed      = "DESTROYED"
)

// GadgetStatuses lists every valid status, in lifecycle order.
var GadgetStatuses = []string{StatusAvailable, StatusDeployed, StatusDecommissioned, StatusDestroyed}

// ValidGadgetStatus reports whether s is one of the four known statuses.
func ValidGadgetStatus(s string) bool {
	for _, v := range GadgetStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Gadget is an inventory item. The codename is system-generated and unique;
// MissionSuccessProbability is recomputed on every list and never persisted.
type Gadget struct {
	ID               string     `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Codename         string     `gorm:"size:32;not null;uniqueIndex" json:"codename"`
	Description      string     `gorm:"size:1024" json:"description"`
	Status           string     `gorm:"size:16;not null;default:AVAILABLE;index" json:"status"`
	DecommissionedAt *time.Time `json:"decommissionedAt,omitempty"`

	MissionSuccessProbability string `gorm:"-" json:"missionSuccessProbability,omitempty"`
}

func (g *Gadget) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
