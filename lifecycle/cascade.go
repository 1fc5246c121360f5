package lifecycle

import (
	"context"

	"github.com/puoklam/lab-app-backend/db/model"
	"gorm.io/gorm"
)

// Explicit transactional cascades for the project/member removal flows.
// The actor's own coordinator memberships are skipped: self-removal stays
// forbidden even when the removal cascades from elsewhere.

// RemoveForProject soft-removes every live membership of a project.
func (e *Engine) RemoveForProject(ctx context.Context, projectID, actorID uint) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("project_id = ? AND NOT (link_type = ? AND member_id = ?)", projectID, model.LinkCoordinator, actorID).
			Delete(&model.Membership{}).Error
	})
}

// RemoveForMember soft-removes every live membership of a member across
// all projects.
func (e *Engine) RemoveForMember(ctx context.Context, memberID, actorID uint) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("member_id = ? AND NOT (link_type = ? AND member_id = ?)", memberID, model.LinkCoordinator, actorID).
			Delete(&model.Membership{}).Error
	})
}
