package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/puoklam/lab-app-backend/db/model"
	"gorm.io/gorm"
)

type SubmitApplicationInput struct {
	MemberID    uint
	ProjectID   uint
	LinkType    model.LinkType
	Role        model.Role
	WeeklyHours int
	StartDate   time.Time
}

// SubmitApplication creates a PENDING membership for an accepted member.
// At most one non-removed PENDING/APPROVED membership may exist per
// (member, project) pair.
func (e *Engine) SubmitApplication(ctx context.Context, in SubmitApplicationInput) (uint, error) {
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
		var member model.Member
		if err := tx.First(&member, in.MemberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}
		if member.RegistrationStatus != model.RegistrationAccepted {
			return ErrMemberNotAccepted
		}
		if err := tx.First(&project, in.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
		active, err := hasActiveMembership(tx, in.MemberID, in.ProjectID)
		if err != nil {
			return err
		}
		if active {
			return ErrActiveMembership
		}
		created = model.Membership{
			MemberID:    in.MemberID,
			ProjectID:   in.ProjectID,
			LinkType:    in.LinkType,
			Role:        in.Role,
			WeeklyHours: in.WeeklyHours,
			StartDate:   in.StartDate,
			Status:      model.StatusPending,
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
		"project_topic": project.Topic.String(),
	})
	return created.ID, nil
}

// Approve moves a PENDING membership to APPROVED. The status check and
// write are a single conditional UPDATE: of two racing approvals exactly
// one flips the row, the other sees zero affected rows and gets
// ErrAlreadyProcessed. When the membership replaces another (transfer),
// the source is closed inside the same transaction.
func (e *Engine) Approve(ctx context.Context, membershipID, actorID uint) error {
	var (
		target model.Membership
		source *model.Membership
	)
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&target, membershipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}
		actor, err := approvedMemberships(tx, actorID)
		if err != nil {
			return err
		}
		if !CanApprove(actor, &target) {
			return ErrNotCoordinator
		}

		res := tx.Model(&model.Membership{}).
			Where("id = ? AND status = ?", target.ID, model.StatusPending).
			Update("status", model.StatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}
		target.Status = model.StatusApproved

		if target.ReplacesMembershipID != nil {
			src, err := e.finalizeTransfer(tx, &target)
			if err != nil {
				return err
			}
			source = src
		}
		return appendEntry(tx, &target)
	})
	if err != nil {
		return err
	}
	if source != nil {
		e.notify(ctx, EventTransferApproved, &target, map[string]any{
			"closed_membership_id": source.ID,
		})
	} else {
		e.notify(ctx, EventApplicationApproved, &target, nil)
	}
	return nil
}

// Reject moves a PENDING membership to REJECTED under the same CAS
// discipline as Approve. Rejecting a transfer's replacement releases the
// source membership's transfer lock in the same transaction.
func (e *Engine) Reject(ctx context.Context, membershipID, actorID uint, reason string) error {
	var target model.Membership
	transfer := false
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&target, membershipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}
		actor, err := approvedMemberships(tx, actorID)
		if err != nil {
			return err
		}
		if !CanReject(actor, &target) {
			return ErrNotCoordinator
		}

		res := tx.Model(&model.Membership{}).
			Where("id = ? AND status = ?", target.ID, model.StatusPending).
			Update("status", model.StatusRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}
		target.Status = model.StatusRejected

		if target.ReplacesMembershipID != nil {
			if err := e.rollbackTransfer(tx, *target.ReplacesMembershipID); err != nil {
				return err
			}
			transfer = true
		}
		return appendEntry(tx, &target)
	})
	if err != nil {
		return err
	}
	var payload map[string]any
	if reason != "" {
		payload = map[string]any{"reason": reason}
	}
	if transfer {
		e.notify(ctx, EventTransferRejected, &target, payload)
	} else {
		e.notify(ctx, EventApplicationRejected, &target, payload)
	}
	return nil
}

// SetEndDate updates the end date only. It is not a status transition, so
// no history entry is written.
func (e *Engine) SetEndDate(ctx context.Context, membershipID, actorID uint, endDate *time.Time) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target model.Membership
		if err := tx.First(&target, membershipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}
		if endDate != nil && endDate.Before(target.StartDate) {
			return ErrInvalidEndDate
		}
		actor, err := approvedMemberships(tx, actorID)
		if err != nil {
			return err
		}
		if !CanApprove(actor, &target) {
			return ErrNotCoordinator
		}
		return tx.Model(&target).Update("end_date", endDate).Error
	})
}

// Remove soft-deletes a membership. History entries referencing it are
// kept untouched.
func (e *Engine) Remove(ctx context.Context, membershipID, actorID uint) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target model.Membership
		if err := tx.First(&target, membershipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}
		actor, err := approvedMemberships(tx, actorID)
		if err != nil {
			return err
		}
		if !CanRemove(actorID, actor, &target) {
			if target.LinkType == model.LinkCoordinator && target.MemberID == actorID {
				return ErrSelfRemoval
			}
			return ErrNotCoordinator
		}
		return tx.Delete(&target).Error
	})
}

func approvedMemberships(tx *gorm.DB, memberID uint) ([]model.Membership, error) {
	var ms []model.Membership
	err := tx.Where("member_id = ? AND status = ?", memberID, model.StatusApproved).Find(&ms).Error
	return ms, err
}

func hasActiveMembership(tx *gorm.DB, memberID, projectID uint) (bool, error) {
	var exists bool
	err := tx.Raw(
		"SELECT EXISTS(SELECT 1 FROM memberships WHERE member_id = ? AND project_id = ? AND status IN ? AND deleted_at IS NULL)",
		memberID, projectID, []model.MembershipStatus{model.StatusPending, model.StatusApproved},
	).Scan(&exists).Error
	return exists, err
}
