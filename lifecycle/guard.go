package lifecycle

import "github.com/puoklam/lab-app-backend/db/model"

// Guard decisions are pure: they only look at rows the caller already
// fetched and never touch storage. Callers translate a false result into
// an authorization error.

// CanApprove reports whether the actor holds an approved coordinator
// membership on the target's project.
func CanApprove(actorMemberships []model.Membership, target *model.Membership) bool {
	return isCoordinator(actorMemberships, target.ProjectID)
}

func CanReject(actorMemberships []model.Membership, target *model.Membership) bool {
	return CanApprove(actorMemberships, target)
}

// CanRemove additionally forbids coordinators removing their own
// coordinator membership, no matter who triggered the removal.
func CanRemove(actorID uint, actorMemberships []model.Membership, target *model.Membership) bool {
	if target.LinkType == model.LinkCoordinator && target.MemberID == actorID {
		return false
	}
	return isCoordinator(actorMemberships, target.ProjectID)
}

// CanViewHistory reports whether the actor may read the member's history:
// their own trail, or that of a member holding a membership in a project
// the actor coordinates.
func CanViewHistory(actorID, memberID uint, actorMemberships, targetMemberships []model.Membership) bool {
	if actorID == memberID {
		return true
	}
	for _, tm := range targetMemberships {
		if isCoordinator(actorMemberships, tm.ProjectID) {
			return true
		}
	}
	return false
}

func isCoordinator(memberships []model.Membership, projectID uint) bool {
	for _, m := range memberships {
		if m.ProjectID == projectID && m.LinkType == model.LinkCoordinator && m.Status == model.StatusApproved {
			return true
		}
	}
	return false
}
