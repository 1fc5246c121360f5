package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/puoklam/lab-app-backend/db/model"
	"gorm.io/gorm"
)

type RequestTransferInput struct {
	MemberID           uint
	TargetProjectID    uint
	LinkType           model.LinkType
	Role               model.Role
	WeeklyHours        int
	StartDate          time.Time
	SourceMembershipID uint
}

// RequestTransfer marks an approved membership for transfer and creates
// its PENDING replacement in the target project. A member can have at most
// one transfer in flight across all projects.
func (e *Engine) RequestTransfer(ctx context.Context, in RequestTransferInput) (uint, error) {
	if err := validateLinkType(in.LinkType); err != nil {
		return 0, err
	}
	if err := validateRole(in.Role); err != nil {
		return 0, err
	}
	if err := validateHours(in.WeeklyHours); err != nil {
		return 0, err
	}
	if err := validateStartDate(in.StartDate); err != nil {
		return 0, err
	}

	var (
		created model.Membership
		project model.Project
	)
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source model.Membership
		if err := tx.First(&source, in.SourceMembershipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}
		if source.MemberID != in.MemberID {
			return ErrMembershipNotFound
		}
		if source.Status != model.StatusApproved {
			return ErrSourceNotActive
		}

		inFlight, err := hasTransferInFlight(tx, in.MemberID)
		if err != nil {
			return err
		}
		if inFlight {
			return ErrTransferInProgress
		}

		if err := tx.First(&project, in.TargetProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
		active, err := hasActiveMembership(tx, in.MemberID, in.TargetProjectID)
		if err != nil {
			return err
		}
		if active {
			return ErrActiveMembership
		}

		// CAS on the source row: lock it for this transfer only if it is
		// still approved and unlocked.
		res := tx.Model(&model.Membership{}).
			Where("id = ? AND status = ? AND transfer_requested = ?", source.ID, model.StatusApproved, false).
			Update("transfer_requested", true)
		if res.Error != nil {
			if isUniqueViolation(res.Error) {
				return ErrTransferInProgress
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTransferInProgress
		}

		created = model.Membership{
			MemberID:             in.MemberID,
			ProjectID:            in.TargetProjectID,
			LinkType:             in.LinkType,
			Role:                 in.Role,
			WeeklyHours:          in.WeeklyHours,
			StartDate:            in.StartDate,
			Status:               model.StatusPending,
			ReplacesMembershipID: &source.ID,
		}
		if err := tx.Create(&created).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrActiveMembership
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	e.notify(ctx, EventNewApplication, &created, map[string]any{
		"replaces_membership_id": in.SourceMembershipID,
		"project_topic":          project.Topic.String(),
	})
	return created.ID, nil
}

// finalizeTransfer closes the source membership while its replacement is
// being approved. Runs inside the approval's transaction, so both rows and
// both ledger entries commit or roll back together.
func (e *Engine) finalizeTransfer(tx *gorm.DB, approved *model.Membership) (*model.Membership, error) {
	var source model.Membership
	if err := tx.First(&source, *approved.ReplacesMembershipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	res := tx.Model(&model.Membership{}).
		Where("id = ? AND status = ? AND transfer_requested = ?", source.ID, model.StatusApproved, true).
		Updates(map[string]any{
			"status":             model.StatusClosed,
			"transfer_requested": false,
			"end_date":           approved.StartDate,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyProcessed
	}
	source.Status = model.StatusClosed
	source.TransferRequested = false
	end := approved.StartDate
	source.EndDate = &end
	if err := appendEntry(tx, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// rollbackTransfer releases the source membership's transfer lock after
// its replacement was rejected. Status and end date stay untouched, and no
// extra ledger entry is written for the source.
func (e *Engine) rollbackTransfer(tx *gorm.DB, sourceID uint) error {
	return tx.Model(&model.Membership{}).
		Where("id = ?", sourceID).
		Update("transfer_requested", false).Error
}

func hasTransferInFlight(tx *gorm.DB, memberID uint) (bool, error) {
	var exists bool
	err := tx.Raw(
		"SELECT EXISTS(SELECT 1 FROM memberships WHERE member_id = ? AND transfer_requested = ? AND deleted_at IS NULL)",
		memberID, true,
	).Scan(&exists).Error
	return exists, err
}
