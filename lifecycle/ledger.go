package lifecycle

import (
	"context"
	"time"

	"github.com/puoklam/lab-app-backend/db/model"
	"gorm.io/gorm"
)

// appendEntry snapshots a membership immediately after a status transition.
// It must run inside the transition's transaction so a rollback never
// leaves an orphan entry, and a failed insert aborts the transition.
func appendEntry(tx *gorm.DB, m *model.Membership) error {
	return tx.Create(&model.MembershipHistory{
		MembershipID:      m.ID,
		MemberID:          m.MemberID,
		ProjectID:         m.ProjectID,
		LinkType:          m.LinkType,
		Role:              m.Role,
		WeeklyHours:       m.WeeklyHours,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Status:            m.Status,
		TransferRequested: m.TransferRequested,
		RecordedAt:        time.Now().UTC(),
	}).Error
}

// ListHistory returns a member's ledger entries, most recent start date
// first. Members read their own trail; approved coordinators read the
// trails of members holding a membership in their project. Entries outlive
// removal of the memberships they snapshot.
func (e *Engine) ListHistory(ctx context.Context, memberID, actorID uint) ([]model.MembershipHistory, error) {
	d := e.db.WithContext(ctx)
	if memberID != actorID {
		actor, err := approvedMemberships(d, actorID)
		if err != nil {
			return nil, err
		}
		var target []model.Membership
		if err := d.Where("member_id = ?", memberID).Find(&target).Error; err != nil {
			return nil, err
		}
		if !CanViewHistory(actorID, memberID, actor, target) {
			return nil, ErrNotCoordinator
		}
	}
	var entries []model.MembershipHistory
	err := d.
		Where("member_id = ?", memberID).
		Order("start_date DESC").
		Find(&entries).Error
	return entries, err
}
