package models

import "gorm.io/gorm"

const (
	MentorActive   = "ACTIVE"
	MentorInactive = "INACTIVE"
)

// Mentor is a directory entry managed by administrators.
type Mentor struct {
	gorm.Model
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	Status    string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	CreatedBy uint   `json:"created_by" gorm:"index"`        // admin user id
}
