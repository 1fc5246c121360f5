package transfer

import "github.com/puoklam/lab-app-backend/db/model"

type InRequestTransfer struct {
	SourceMembershipID *uint   `json:"source_membership_id"`
	ProjectID          *uint   `json:"project_id"`
	LinkType           *string `json:"link_type"`
	Role               *string `json:"role"`
	WeeklyHours        *int    `json:"weekly_hours"`
	StartDate          *string `json:"start_date"`
}

type OutRequestTransfer struct {
	ID     uint                   `json:"id"`
	Status model.MembershipStatus `json:"status"`
}
