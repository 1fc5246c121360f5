package lifecycle

import (
	"context"
	"testing"

	"github.com/puoklam/lab-app-backend/db/model"
	"github.com/stretchr/testify/require"
)

func TestRemoveForProject(t *testing.T) {
	e, _, d := testEngine(t)
	p := seedProject(t, d)
	coord := seedCoordinator(t, d, p.ID)
	a := seedMember(t, d, model.RegistrationAccepted)
	b := seedMember(t, d, model.RegistrationAccepted)
	msA := seedMembership(t, d, a.ID, p.ID, model.LinkCollaborator, model.StatusApproved)
	msB := seedMembership(t, d, b.ID, p.ID, model.LinkCollaborator, model.StatusPending)

	other := seedProject(t, d)
	elsewhere := seedMembership(t, d, a.ID, other.ID, model.LinkCollaborator, model.StatusApproved)

	require.NoError(t, e.RemoveForProject(context.Background(), p.ID, coord.ID))

	require.Error(t, d.First(&model.Membership{}, msA.ID).Error)
	require.Error(t, d.First(&model.Membership{}, msB.ID).Error)
	// memberships outside the project are untouched
	require.NoError(t, d.First(&model.Membership{}, elsewhere.ID).Error)

	// the acting coordinator's own row survives the cascade
	var own model.Membership
	require.NoError(t, d.Where("member_id = ? AND project_id = ?", coord.ID, p.ID).First(&own).Error)
}

func TestRemoveForMember(t *testing.T) {
	e, _, d := testEngine(t)
	p1 := seedProject(t, d)
	p2 := seedProject(t, d)
	m := seedMember(t, d, model.RegistrationAccepted)
	ms1 := seedMembership(t, d, m.ID, p1.ID, model.LinkCollaborator, model.StatusApproved)
	ms2 := seedMembership(t, d, m.ID, p2.ID, model.LinkCollaborator, model.StatusPending)

	bystander := seedMember(t, d, model.RegistrationAccepted)
	msOther := seedMembership(t, d, bystander.ID, p1.ID, model.LinkCollaborator, model.StatusApproved)

	actor := seedCoordinator(t, d, p1.ID)
	require.NoError(t, e.RemoveForMember(context.Background(), m.ID, actor.ID))

	require.Error(t, d.First(&model.Membership{}, ms1.ID).Error)
	require.Error(t, d.First(&model.Membership{}, ms2.ID).Error)
	require.NoError(t, d.First(&model.Membership{}, msOther.ID).Error)
}

func TestRemoveForMemberSelfKeepsCoordinatorRows(t *testing.T) {
	e, _, d := testEngine(t)
	p1 := seedProject(t, d)
	p2 := seedProject(t, d)
	coord := seedCoordinator(t, d, p1.ID)
	collab := seedMembership(t, d, coord.ID, p2.ID, model.LinkCollaborator, model.StatusApproved)

	require.NoError(t, e.RemoveForMember(context.Background(), coord.ID, coord.ID))

	// collaborator rows go, own coordinator rows stay
	require.Error(t, d.First(&model.Membership{}, collab.ID).Error)
	var own model.Membership
	require.NoError(t, d.Where("member_id = ? AND project_id = ?", coord.ID, p1.ID).First(&own).Error)
}
