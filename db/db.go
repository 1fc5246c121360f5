package db

import (
	"context"

	"github.com/puoklam/lab-app-backend/db/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// Init opens the postgres connection and migrates the schema. Called once
// from main; tests inject their own handle with Set instead.
func Init(conn string) error {
	d, err := gorm.Open(postgres.Open(conn), &gorm.Config{})
	if err != nil {
		return err
	}
	if err := Migrate(d); err != nil {
		return err
	}
	db = d
	return nil
}

func Migrate(d *gorm.DB) error {
	if err := d.AutoMigrate(
		&model.Member{},
		&model.Project{},
		&model.Membership{},
		&model.MembershipHistory{},
		&model.Session{},
	); err != nil {
		return err
	}
	// Backstop indexes for the one-active-membership and
	// one-transfer-in-flight rules. The in-transaction EXISTS checks race
	// under concurrent transactions; the unique index is the arbiter.
	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_memberships_active_member_project ON memberships (member_id, project_id) WHERE status IN ('PENDING', 'APPROVED') AND deleted_at IS NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_memberships_transfer_in_flight ON memberships (member_id) WHERE transfer_requested AND deleted_at IS NULL",
	} {
		if err := d.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func Set(d *gorm.DB) {
	db = d
}

func GetDB(ctx context.Context) *gorm.DB {
	return db.WithContext(ctx)
}
