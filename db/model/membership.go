package model

import (
	"database/sql/driver"
	"time"
)

type LinkType string

const (
	LinkCoordinator  LinkType = "COORDINATOR"
	LinkCollaborator LinkType = "COLLABORATOR"
)

type Role string

const (
	RoleResearcher Role = "RESEARCHER"
	RoleDeveloper  Role = "DEVELOPER"
	RoleTechnician Role = "TECHNICIAN"
	RoleIntern     Role = "INTERN"
)

type MembershipStatus string

// PENDING may move to APPROVED or REJECTED, APPROVED may move to CLOSED.
// CLOSED and REJECTED are terminal.
const (
	StatusPending  MembershipStatus = "PENDING"
	StatusApproved MembershipStatus = "APPROVED"
	StatusRejected MembershipStatus = "REJECTED"
	StatusClosed   MembershipStatus = "CLOSED"
)

func (s *MembershipStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = MembershipStatus(v)
	case []byte:
		*s = MembershipStatus(v)
	}
	return nil
}

func (s MembershipStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Membership is one continuous period linking a member to a project.
type Membership struct {
	Base
	MemberID             uint             `gorm:"index" json:"member_id"`
	ProjectID            uint             `gorm:"index" json:"project_id"`
	LinkType             LinkType         `json:"link_type"`
	Role                 Role             `json:"role"`
	WeeklyHours          int              `json:"weekly_hours"`
	StartDate            time.Time        `json:"start_date"`
	EndDate              *time.Time       `json:"end_date"`
	Status               MembershipStatus `gorm:"index" json:"status"`
	TransferRequested    bool             `json:"transfer_requested"`
	ReplacesMembershipID *uint            `json:"replaces_membership_id"`
	Member               *Member          `json:"member,omitempty"`
	Project              *Project         `json:"project,omitempty"`
}
