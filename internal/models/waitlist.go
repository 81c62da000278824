package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WaitlistStatusPending is the only status intake produces. Later
// transitions happen in the admin surface, not here.
const WaitlistStatusPending = "pending"

// WaitlistSourceWebsite is the origin channel recorded for every signup
// that arrives through this API.
const WaitlistSourceWebsite = "website"

// WaitlistUseCaseDefault is stored when a signup omits its use case.
const WaitlistUseCaseDefault = "N/A"

// WaitlistRoles is the fixed set of roles a signup may declare.
var WaitlistRoles = []string{
	"developer",
	"expert",
	"educator",
	"researcher",
	"enterprise",
	"investor",
	"other",
}

type WaitlistEntry struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	Organization string
	Role         string `gorm:"not null"`
	UseCase      string `gorm:"not null;default:N/A"`
	Status       string `gorm:"not null;default:pending"`
	Source       string `gorm:"not null"`
	UserAgent    string
	IPAddress    string
	DeviceType   string
	Browser      string
	OS           string
	Metadata     datatypes.JSON
}
