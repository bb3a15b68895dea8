package models

import "gorm.io/gorm"

// Thread is a forum post owned by a student. ViewCount and CommentCount are
// denormalized; CommentCount is updated in the same transaction as the
// triggering write and repaired by the nightly reconciliation job.
type Thread struct {
	gorm.Model
	StudentID    uint   `json:"student_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ViewCount    int64  `json:"view_count" gorm:"default:0"`
	CommentCount int64  `json:"comment_count" gorm:"default:0"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}

// Comment is a reply on a thread. Rows cascade on thread delete.
type Comment struct {
	gorm.Model
	ThreadID  uint   `json:"thread_id" gorm:"index;not null"`
	StudentID uint   `json:"student_id" gorm:"index;not null"`
	Content   string `json:"content"`
}
