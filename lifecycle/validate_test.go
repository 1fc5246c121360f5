package lifecycle

import (
	"testing"
	"time"

	"github.com/puoklam/lab-app-backend/db/model"
	"github.com/stretchr/testify/require"
)

func TestValidateHours(t *testing.T) {
	require.ErrorIs(t, validateHours(0), ErrInvalidHours)
	require.NoError(t, validateHours(1))
	require.NoError(t, validateHours(40))
	require.ErrorIs(t, validateHours(41), ErrInvalidHours)
}

func TestValidateLinkType(t *testing.T) {
	require.NoError(t, validateLinkType(model.LinkCoordinator))
	require.NoError(t, validateLinkType(model.LinkCollaborator))
	require.ErrorIs(t, validateLinkType(model.LinkType("OWNER")), ErrInvalidLinkType)
}

func TestValidateRole(t *testing.T) {
	require.NoError(t, validateRole(model.RoleDeveloper))
	require.ErrorIs(t, validateRole(model.Role("WIZARD")), ErrInvalidRole)
}

func TestValidateStartDate(t *testing.T) {
	require.ErrorIs(t, validateStartDate(time.Time{}), ErrInvalidStartDate)
	require.NoError(t, validateStartDate(date(2025, 1, 6)))
}
