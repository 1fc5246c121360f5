package model

import "time"

// MembershipHistory is an append-only snapshot taken right after a status
// transition. Rows are never updated or deleted, and all membership fields
// are denormalized so entries stay resolvable after the membership, member
// or project is removed.
type MembershipHistory struct {
	ID                uint             `gorm:"primarykey" json:"id"`
	MembershipID      uint             `gorm:"index" json:"membership_id"`
	MemberID          uint             `gorm:"index" json:"member_id"`
	ProjectID         uint             `json:"project_id"`
	LinkType          LinkType         `json:"link_type"`
	Role              Role             `json:"role"`
	WeeklyHours       int              `json:"weekly_hours"`
	StartDate         time.Time        `json:"start_date"`
	EndDate           *time.Time       `json:"end_date"`
	Status            MembershipStatus `json:"status"`
	TransferRequested bool             `json:"transfer_requested"`
	RecordedAt        time.Time        `json:"recorded_at"`
}
