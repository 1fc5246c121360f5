package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	Base
	Name        string       `json:"name"`
	Topic       uuid.UUID    `json:"-" gorm:"type:uuid"`
	Memberships []Membership `json:"memberships,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Topic == uuid.Nil {
		p.Topic = uuid.New()
	}
	return nil
}
