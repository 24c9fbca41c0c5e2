package models

import (
	"time"

	"github.com/lib/pq"
)

// OfficerRole is the municipal staff role carried in the caller identity.
// RoleMaintainer is listed here because maintainers authenticate through
// the same token shape, even though they live in their own table.
type OfficerRole string

const (
	RoleAdministrator   OfficerRole = "municipal_administrator"
	RolePublicRelations OfficerRole = "municipal_public_relations_officer"
	RoleTechnicalStaff  OfficerRole = "technical_office_staff"
	RoleMaintainer      OfficerRole = "maintainer"
	RoleCitizen         OfficerRole = "user"
)

// Officer is internal municipal staff, staffed per office category.
type Officer struct {
	ID      uint        `gorm:"primaryKey" json:"id"`
	Name    string      `gorm:"not null" json:"name"`
	Surname string      `gorm:"not null" json:"surname"`
	Email   string      `gorm:"uniqueIndex;not null" json:"email"`
	Role    OfficerRole `gorm:"type:varchar(64)" json:"role"`
	Office  OfficeType  `gorm:"type:varchar(64)" json:"office"`

	CreatedAt time.Time `json:"createdAt"`
}

// Maintainer is external staff assigned to physically resolve reports.
// One maintainer can serve several office categories.
type Maintainer struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Categories pq.StringArray `gorm:"type:text[]" json:"categories"`
	Active     bool           `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
}
