package lifecycle

import (
	"context"
	"testing"

	"github.com/puoklam/lab-app-backend/db/model"
	"github.com/stretchr/testify/require"
)

func TestListHistoryOrdering(t *testing.T) {
	e, _, d := testEngine(t)
	ctx := context.Background()
	m := seedMember(t, d, model.RegistrationAccepted)
	p1 := seedProject(t, d)
	p2 := seedProject(t, d)
	coord1 := seedCoordinator(t, d, p1.ID)
	coord2 := seedCoordinator(t, d, p2.ID)

	early := seedMembership(t, d, m.ID, p1.ID, model.LinkCollaborator, model.StatusPending)
	early.StartDate = date(2024, 1, 8)
	require.NoError(t, d.Save(early).Error)
	require.NoError(t, e.Approve(ctx, early.ID, coord1.ID))

	late := seedMembership(t, d, m.ID, p2.ID, model.LinkCollaborator, model.StatusPending)
	late.StartDate = date(2025, 2, 3)
	require.NoError(t, d.Save(late).Error)
	require.NoError(t, e.Approve(ctx, late.ID, coord2.ID))

	entries, err := e.ListHistory(ctx, m.ID, m.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, late.ID, entries[0].MembershipID)
	require.Equal(t, early.ID, entries[1].MembershipID)
}

func TestListHistoryScopedToMember(t *testing.T) {
	e, _, d := testEngine(t)
	ctx := context.Background()
	p := seedProject(t, d)
	coord := seedCoordinator(t, d, p.ID)

	a := seedMember(t, d, model.RegistrationAccepted)
	b := seedMember(t, d, model.RegistrationAccepted)
	msA := seedMembership(t, d, a.ID, p.ID, model.LinkCollaborator, model.StatusPending)
	msB := seedMembership(t, d, b.ID, p.ID, model.LinkCollaborator, model.StatusPending)
	require.NoError(t, e.Approve(ctx, msA.ID, coord.ID))
	require.NoError(t, e.Reject(ctx, msB.ID, coord.ID, ""))

	entries, err := e.ListHistory(ctx, a.ID, a.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, msA.ID, entries[0].MembershipID)
	require.Equal(t, model.StatusApproved, entries[0].Status)
}

func TestListHistoryAuthorization(t *testing.T) {
	e, _, d := testEngine(t)
	ctx := context.Background()
	p := seedProject(t, d)
	coord := seedCoordinator(t, d, p.ID)
	m := seedMember(t, d, model.RegistrationAccepted)
	ms := seedMembership(t, d, m.ID, p.ID, model.LinkCollaborator, model.StatusPending)
	require.NoError(t, e.Approve(ctx, ms.ID, coord.ID))

	// the project's coordinator may read the member's trail
	entries, err := e.ListHistory(ctx, m.ID, coord.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// an unrelated member may not
	outsider := seedMember(t, d, model.RegistrationAccepted)
	_, err = e.ListHistory(ctx, m.ID, outsider.ID)
	require.ErrorIs(t, err, ErrNotCoordinator)

	// nor a coordinator of a project the member is not part of
	p2 := seedProject(t, d)
	foreign := seedCoordinator(t, d, p2.ID)
	_, err = e.ListHistory(ctx, m.ID, foreign.ID)
	require.ErrorIs(t, err, ErrNotCoordinator)
}

func TestHistorySurvivesRemoval(t *testing.T) {
	e, _, d := testEngine(t)
	ctx := context.Background()
	p := seedProject(t, d)
	coord := seedCoordinator(t, d, p.ID)
	m := seedMember(t, d, model.RegistrationAccepted)
	ms := seedMembership(t, d, m.ID, p.ID, model.LinkCollaborator, model.StatusPending)

	require.NoError(t, e.Approve(ctx, ms.ID, coord.ID))
	require.NoError(t, e.Remove(ctx, ms.ID, coord.ID))

	entries, err := e.ListHistory(ctx, m.ID, m.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, ms.ID, entries[0].MembershipID)
}

func TestHistoryEntryIsSnapshot(t *testing.T) {
	e, _, d := testEngine(t)
	ctx := context.Background()
	p := seedProject(t, d)
	coord := seedCoordinator(t, d, p.ID)
	m := seedMember(t, d, model.RegistrationAccepted)
	ms := seedMembership(t, d, m.ID, p.ID, model.LinkCollaborator, model.StatusPending)

	require.NoError(t, e.Approve(ctx, ms.ID, coord.ID))

	// later edits to the row do not rewrite the recorded entry
	end := date(2025, 12, 19)
	require.NoError(t, e.SetEndDate(ctx, ms.ID, coord.ID, &end))

	entries := historyFor(t, d, ms.ID)
	require.Len(t, entries, 1)
	require.Nil(t, entries[0].EndDate)
	require.Equal(t, model.RoleResearcher, entries[0].Role)
	require.Equal(t, 20, entries[0].WeeklyHours)
	require.False(t, entries[0].RecordedAt.IsZero())
}
