package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EnrollmentOngoing   = "ONGOING"
	EnrollmentCompleted = "COMPLETED"
)

// Enrollment grants a student access to a course and tracks progress.
// The (student_id, course_id) unique index closes the duplicate-enroll race:
// the handler pre-check gives the friendly message, the index is the guarantee.
type Enrollment struct {
	gorm.Model
	StudentID   uint       `json:"student_id" gorm:"uniqueIndex:idx_student_course;not null"`
	CourseID    uint       `json:"course_id" gorm:"uniqueIndex:idx_student_course;not null"`
	Reference   string     `json:"reference" gorm:"index"`
	Status      string     `json:"status" gorm:"default:'ONGOING'"` // ONGOING, COMPLETED
	Progress    float64    `json:"progress" gorm:"default:0"`       // completion percentage (0-100)
	StartDate   time.Time  `json:"start_date"`
	CompletedAt *time.Time `json:"completed_at"`
}

// MaterialCompletion records that a student finished one material.
// Completion state is authoritative server-side; clients may cache but the
// course detail endpoint always returns the stored set.
type MaterialCompletion struct {
	gorm.Model
	StudentID  uint `json:"student_id" gorm:"uniqueIndex:idx_student_material;not null"`
	CourseID   uint `json:"course_id" gorm:"index;not null"`
	MaterialID uint `json:"material_id" gorm:"uniqueIndex:idx_student_material;not null"`
}
