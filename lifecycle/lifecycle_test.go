package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/puoklam/lab-app-backend/db"
	"github.com/puoklam/lab-app-backend/db/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeNotifier struct {
	events []Event
}

func (f *fakeNotifier) Notify(ctx context.Context, e Event) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeNotifier) last(t *testing.T) Event {
	t.Helper()
	require.NotEmpty(t, f.events)
	return f.events[len(f.events)-1]
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := d.DB()
	require.NoError(t, err)
	// a single connection keeps every session on the same in-memory db
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(d))
	return d
}

func testEngine(t *testing.T) (*Engine, *fakeNotifier, *gorm.DB) {
	t.Helper()
	d := testDB(t)
	n := &fakeNotifier{}
	return NewEngine(d, n, nil), n, d
}

func seedMember(t *testing.T, d *gorm.DB, status model.RegistrationStatus) *model.Member {
	t.Helper()
	m := &model.Member{RegistrationStatus: status, Email: uuid.NewString() + "@lab.local"}
	require.NoError(t, d.Create(m).Error)
	return m
}

func seedProject(t *testing.T, d *gorm.DB) *model.Project {
	t.Helper()
	p := &model.Project{Name: "project"}
	require.NoError(t, d.Create(p).Error)
	return p
}

func seedMembership(t *testing.T, d *gorm.DB, memberID, projectID uint, lt model.LinkType, status model.MembershipStatus) *model.Membership {
	t.Helper()
	ms := &model.Membership{
		MemberID:    memberID,
		ProjectID:   projectID,
		LinkType:    lt,
		Role:        model.RoleResearcher,
		WeeklyHours: 20,
		StartDate:   date(2024, 6, 3),
		Status:      status,
	}
	require.NoError(t, d.Create(ms).Error)
	return ms
}

// seedCoordinator creates an accepted member holding an approved
// coordinator membership on the project.
func seedCoordinator(t *testing.T, d *gorm.DB, projectID uint) *model.Member {
	t.Helper()
	m := seedMember(t, d, model.RegistrationAccepted)
	seedMembership(t, d, m.ID, projectID, model.LinkCoordinator, model.StatusApproved)
	return m
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func historyFor(t *testing.T, d *gorm.DB, membershipID uint) []model.MembershipHistory {
	t.Helper()
	var entries []model.MembershipHistory
	require.NoError(t, d.Where("membership_id = ?", membershipID).Order("id").Find(&entries).Error)
	return entries
}

func reload(t *testing.T, d *gorm.DB, id uint) *model.Membership {
	t.Helper()
	var ms model.Membership
	require.NoError(t, d.First(&ms, id).Error)
	return &ms
}
