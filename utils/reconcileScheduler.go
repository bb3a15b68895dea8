package utils

import (
	"innoventum/database"
	"innoventum/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeReconciliationScheduler sets up the nightly derived-state repair job
func InitializeReconciliationScheduler() {
	log.Println("[RECONCILER] Initializing reconciliation scheduler...")

	c := cron.New()

	// Run daily at 02:30 to repair derived state
	c.AddFunc("30 2 * * *", func() {
		log.Println("[RECONCILER] Running nightly reconciliation...")
		ReconcileEnrollmentProgress()
		ReconcileThreadCounters()
	})

	c.Start()
	log.Println("[RECONCILER] Reconciliation scheduler started - runs daily at 02:30")
}

// ReconcileEnrollmentProgress recomputes the progress percentage of every
// ongoing enrollment from the stored material completions. The percentage is
// maintained inline on each completion write; this repairs any drift.
func ReconcileEnrollmentProgress() {
	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("status = ?", models.EnrollmentOngoing).Find(&enrollments).Error; err != nil {
		log.Printf("[RECONCILER] Error fetching ongoing enrollments: %v", err)
		return
	}

	repaired := 0
	for _, e := range enrollments {
		var totalMaterials, completedMaterials int64
		db.Model(&models.Material{}).Where("course_id = ?", e.CourseID).Count(&totalMaterials)
		db.Model(&models.MaterialCompletion{}).Where("student_id = ? AND course_id = ?", e.StudentID, e.CourseID).Count(&completedMaterials)

		progress := float64(0)
		if totalMaterials > 0 {
			progress = float64(completedMaterials) / float64(totalMaterials) * 100
		}

		if progress == e.Progress {
			continue
		}

		updates := map[string]interface{}{"progress": progress}
		if progress >= 100 {
			now := time.Now()
			updates["status"] = models.EnrollmentCompleted
			updates["completed_at"] = &now
		}
		if err := db.Model(&models.Enrollment{}).Where("id = ?", e.ID).Updates(updates).Error; err != nil {
			log.Printf("[RECONCILER] Error updating enrollment %d: %v", e.ID, err)
			continue
		}
		repaired++
	}

	log.Printf("[RECONCILER] Enrollment progress pass done, %d repaired", repaired)
}

// ReconcileThreadCounters rewrites each thread's denormalized comment count
// from the actual comment rows.
func ReconcileThreadCounters() {
	db := database.Database.Db

	var threads []models.Thread
	if err := db.Where("is_deleted = ?", false).Find(&threads).Error; err != nil {
		log.Printf("[RECONCILER] Error fetching threads: %v", err)
		return
	}

	repaired := 0
	for _, t := range threads {
		var actual int64
		db.Model(&models.Comment{}).Where("thread_id = ?", t.ID).Count(&actual)
		if actual == t.CommentCount {
			continue
		}
		if err := db.Model(&models.Thread{}).Where("id = ?", t.ID).UpdateColumn("comment_count", actual).Error; err != nil {
			log.Printf("[RECONCILER] Error updating thread %d: %v", t.ID, err)
			continue
		}
		repaired++
	}

	log.Printf("[RECONCILER] Thread counter pass done, %d repaired", repaired)
}
