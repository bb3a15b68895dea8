package models

import "gorm.io/gorm"

const (
	MaterialVideo    = "VIDEO"
	MaterialDocument = "DOCUMENT"
	MaterialExercise = "EXERCISE"
)

// Material is one orderable unit of course content (materi).
// OrderIndex is unique within a course; the composite unique index is the
// authoritative guard, the validators only pre-check for a friendlier message.
type Material struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"uniqueIndex:idx_course_order;not null"`
	Title      string `json:"title"`
	Type       string `json:"type" gorm:"default:'VIDEO'"` // VIDEO, DOCUMENT, EXERCISE
	ContentURL string `json:"content_url"`
	OrderIndex int    `json:"order_index" gorm:"uniqueIndex:idx_course_order;not null"`
	Duration   *int   `json:"duration"` // minutes, nullable
}
