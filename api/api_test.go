package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/puoklam/lab-app-backend/lifecycle"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{lifecycle.ErrInvalidHours, http.StatusBadRequest},
		{lifecycle.ErrInvalidEndDate, http.StatusBadRequest},
		{lifecycle.ErrNotCoordinator, http.StatusForbidden},
		{lifecycle.ErrSelfRemoval, http.StatusForbidden},
		{lifecycle.ErrActiveMembership, http.StatusConflict},
		{lifecycle.ErrAlreadyProcessed, http.StatusConflict},
		{lifecycle.ErrTransferInProgress, http.StatusConflict},
		{lifecycle.ErrMembershipNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Status(c.err), c.err)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, lifecycle.ErrAlreadyProcessed)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, lifecycle.ErrAlreadyProcessed.Error(), rec.Body.String())

	// internals leak nothing
	rec = httptest.NewRecorder()
	WriteError(rec, errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Empty(t, rec.Body.String())
}
