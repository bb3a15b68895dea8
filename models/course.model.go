package models

import "gorm.io/gorm"

const (
	CourseDraft     = "DRAFT"
	CoursePublished = "PUBLISHED"
	CourseArchived  = "ARCHIVED"

	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

// Course represents a catalog entry (kursus)
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category" gorm:"index"`
	Level        string `json:"level" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	Status       string `json:"status" gorm:"default:'DRAFT'"`   // DRAFT, PUBLISHED, ARCHIVED
	Duration     int    `json:"duration" gorm:"default:0"`       // total duration in minutes
	ThumbnailURL string `json:"thumbnail_url"`
	CreatedBy    uint   `json:"created_by" gorm:"index"` // admin user id
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
