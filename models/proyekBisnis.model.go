package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ProyekIdeas     = "IDEAS"
	ProyekPlanning  = "PLANNING"
	ProyekExecution = "EXECUTION"
	ProyekDone      = "DONE"
)

// ProyekBisnis is a student-owned business project.
type ProyekBisnis struct {
	gorm.Model
	StudentID   uint           `json:"student_id" gorm:"index;not null"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      string         `json:"status" gorm:"default:'IDEAS'"` // IDEAS, PLANNING, EXECUTION, DONE
	Links       datatypes.JSON `json:"links"`                         // reference URLs (pitch deck, repo, site)
}
