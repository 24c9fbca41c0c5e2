package models

import (
	"time"

	"github.com/lib/pq"
)

// ReportState is the lifecycle state of a report.
type ReportState string

const (
	StatePending    ReportState = "PENDING"
	StateAssigned   ReportState = "ASSIGNED"
	StateApproved   ReportState = "APPROVED"
	StateInProgress ReportState = "IN_PROGRESS"
	StateSuspended  ReportState = "SUSPENDED"
	StateResolved   ReportState = "RESOLVED"
	StateDeclined   ReportState = "DECLINED"
)

// IsTerminal reports whether no further transition is legal from s.
func (s ReportState) IsTerminal() bool {
	return s == StateResolved || s == StateDeclined
}

// OfficeType is the closed set of municipal office categories. Every report
// belongs to exactly one category and officers are staffed per office.
type OfficeType string

const (
	OfficeWaterSupply           OfficeType = "water_supply"
	OfficeArchitecturalBarriers OfficeType = "architectural_barriers"
	OfficePublicLighting        OfficeType = "public_lighting"
	OfficeWaste                 OfficeType = "waste"
	OfficeRoadSigns             OfficeType = "road_signs_and_traffic_lights"
	OfficeRoads                 OfficeType = "roads_and_urban_furnishings"
	OfficeGreenAreas            OfficeType = "public_green_areas_and_playgrounds"
	OfficeOrganization          OfficeType = "organization"
	OfficeOther                 OfficeType = "other"
)

// AllOffices lists every valid category, used for create-time validation.
var AllOffices = []OfficeType{
	OfficeWaterSupply,
	OfficeArchitecturalBarriers,
	OfficePublicLighting,
	OfficeWaste,
	OfficeRoadSigns,
	OfficeRoads,
	OfficeGreenAreas,
	OfficeOrganization,
	OfficeOther,
}

// ValidOffice reports whether c is one of the known office categories.
func ValidOffice(c OfficeType) bool {
	for _, o := range AllOffices {
		if o == c {
			return true
		}
	}
	return false
}

// Report is a citizen-filed civic issue tracked through the workflow.
// Reason is non-nil iff State is DECLINED. AssignedOfficerID is only ever
// set after the report has left PENDING.
type Report struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	Title    string     `gorm:"type:text;not null" json:"title"`
	Category OfficeType `gorm:"type:varchar(64);not null;index" json:"category"`

	LocationName string   `gorm:"type:text" json:"locationName"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	Description string         `gorm:"type:text" json:"description"`
	Photos      pq.StringArray `gorm:"type:text[]" json:"photos"`

	// AuthorID is nil for anonymous reports, which cannot be linked back
	// to a citizen.
	AuthorID  *uint `gorm:"index" json:"authorId"`
	Anonymity bool  `gorm:"default:false" json:"anonymity"`

	State  ReportState `gorm:"type:varchar(32);not null;default:'PENDING';index" json:"state"`
	Reason *string     `gorm:"type:text" json:"reason"`

	AssignedOfficerID    *uint `gorm:"index" json:"assignedOfficerId"`
	AssignedMaintainerID *uint `gorm:"index" json:"assignedMaintainerId"`

	CreatedAt time.Time `json:"createdAt"`
}
