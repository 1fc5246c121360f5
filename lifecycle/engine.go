// Package lifecycle implements the membership state machine: applications,
// approval and rejection, end dates, soft removal and atomic transfers.
// Every status transition runs as one transaction that also appends a
// history entry; notifications go out only after commit.
package lifecycle

import (
	"log"

	"gorm.io/gorm"
)

type Engine struct {
	db       *gorm.DB
	notifier Notifier
	logger   *log.Logger
}

// NewEngine builds an engine over db. notifier may be nil (no events are
// emitted, transitions still commit).
func NewEngine(db *gorm.DB, notifier Notifier, logger *log.Logger) *Engine {
	return &Engine{db: db, notifier: notifier, logger: logger}
}
