package models

import "gorm.io/gorm"

// Student is the learner profile attached 1:1 to a User with role STUDENT.
type Student struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	NIM         string `json:"nim" gorm:"uniqueIndex;not null"`
	Institution string `json:"institution" gorm:"default:''"`
	Program     string `json:"program" gorm:"default:''"`
	Semester    int    `json:"semester" gorm:"default:0"`
}

// Administrator is the back-office profile attached 1:1 to a User with role ADMIN.
type Administrator struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Position string `json:"position" gorm:"default:''"`
}
