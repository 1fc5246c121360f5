package membership

import "github.com/puoklam/lab-app-backend/db/model"

type InCreateMembership struct {
	ProjectID   *uint   `json:"project_id"`
	LinkType    *string `json:"link_type"`
	Role        *string `json:"role"`
	WeeklyHours *int    `json:"weekly_hours"`
	StartDate   *string `json:"start_date"`
}

type OutCreateMembership struct {
	ID     uint                   `json:"id"`
	Status model.MembershipStatus `json:"status"`
}

type InReject struct {
	Reason *string `json:"reason"`
}

type InSetEndDate struct {
	EndDate *string `json:"end_date"`
}
