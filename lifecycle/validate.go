package lifecycle

import (
	"time"

	"github.com/puoklam/lab-app-backend/db/model"
)

const (
	MinWeeklyHours = 1
	MaxWeeklyHours = 40
)

func validateLinkType(lt model.LinkType) error {
	switch lt {
	case model.LinkCoordinator, model.LinkCollaborator:
		return nil
	}
	return ErrInvalidLinkType
}

func validateRole(r model.Role) error {
	switch r {
	case model.RoleResearcher, model.RoleDeveloper, model.RoleTechnician, model.RoleIntern:
		return nil
	}
	return ErrInvalidRole
}

func validateHours(h int) error {
	if h < MinWeeklyHours || h > MaxWeeklyHours {
		return ErrInvalidHours
	}
	return nil
}

func validateStartDate(t time.Time) error {
	if t.IsZero() {
		return ErrInvalidStartDate
	}
	return nil
}
