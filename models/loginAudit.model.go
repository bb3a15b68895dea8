package models

import "gorm.io/gorm"

// LoginAudit records each successful login for security review.
type LoginAudit struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}
