package model

import "database/sql/driver"

type RegistrationStatus string

const (
	RegistrationIncomplete RegistrationStatus = "INCOMPLETE"
	RegistrationPending    RegistrationStatus = "PENDING"
	RegistrationAccepted   RegistrationStatus = "ACCEPTED"
	RegistrationRejected   RegistrationStatus = "REJECTED"
)

func (s *RegistrationStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = RegistrationStatus(v)
	case []byte:
		*s = RegistrationStatus(v)
	}
	return nil
}

func (s RegistrationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

type Member struct {
	Base
	Name               string             `json:"name"`
	Email              string             `gorm:"unique" json:"email"`
	Pass               string             `json:"-"`
	RegistrationStatus RegistrationStatus `json:"registration_status"`
	Memberships        []Membership       `json:"memberships,omitempty"`
	Sessions           []Session          `json:"sessions,omitempty"`
}
