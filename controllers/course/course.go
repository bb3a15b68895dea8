package courseController

import (
	"errors"
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	"innoventum/utils"
	courseValidator "innoventum/validators/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveStudent loads the student profile for the authenticated user.
func resolveStudent(userID uint) (models.Student, error) {
	var student models.Student
	err := database.Database.Db.Where("user_id = ?", userID).First(&student).Error
	return student, err
}

// GetCatalog lists published courses with search and filter support.
func GetCatalog(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	query, ok := c.Locals("validatedCatalogQuery").(*courseValidator.CatalogQuery)
	if !ok {
		query = &courseValidator.CatalogQuery{Page: 1, Limit: 10}
	}
	offset := (query.Page - 1) * query.Limit

	db := database.Database.Db.Model(&models.Course{}).
		Where("is_deleted = ? AND status = ?", false, models.CoursePublished)

	if query.Search != "" {
		db = db.Where("title LIKE ?", "%"+query.Search+"%")
	}
	if query.Category != "" {
		db = db.Where("category = ?", query.Category)
	}
	if query.Level != "" {
		db = db.Where("level = ?", query.Level)
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(query.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}

// GetCourseDetail assembles everything a learner needs to view a course:
// metadata, ordered materials grouped by type, enrollment state, the caller's
// completed material ids, and a bounded list of recent participants.
func GetCourseDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Enrollment state is a per-request lookup; admins have no student profile
	isEnrolled := false
	var completedIDs []uint
	student, err := resolveStudent(userID)
	if err == nil {
		var enrollment models.Enrollment
		if err := db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&enrollment).Error; err == nil {
			isEnrolled = true
		}
		db.Model(&models.MaterialCompletion{}).
			Where("student_id = ? AND course_id = ?", student.ID, course.ID).
			Pluck("material_id", &completedIDs)
	}

	// Unpublished courses stay visible to already-enrolled students only
	if course.Status != models.CoursePublished && !isEnrolled {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var materials []models.Material
	if err := db.Where("course_id = ?", course.ID).Order("order_index asc").Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	// Group into display buckets, order preserved within each
	videos := make([]models.Material, 0)
	documents := make([]models.Material, 0)
	exercises := make([]models.Material, 0)
	totalDuration := 0
	for _, m := range materials {
		if m.Duration != nil {
			totalDuration += *m.Duration
		}
		switch m.Type {
		case models.MaterialDocument:
			documents = append(documents, m)
		case models.MaterialExercise:
			exercises = append(exercises, m)
		default:
			videos = append(videos, m)
		}
	}

	type Participant struct {
		StudentID  uint      `json:"student_id"`
		Name       string    `json:"name"`
		EnrolledAt time.Time `json:"enrolled_at"`
	}

	var recentEnrollments []models.Enrollment
	db.Where("course_id = ?", course.ID).Order("created_at desc").Limit(5).Find(&recentEnrollments)

	participants := make([]Participant, 0, len(recentEnrollments))
	for _, e := range recentEnrollments {
		var s models.Student
		if err := db.Where("id = ?", e.StudentID).First(&s).Error; err != nil {
			continue
		}
		var u models.User
		db.Where("id = ?", s.UserID).First(&u)
		participants = append(participants, Participant{
			StudentID:  s.ID,
			Name:       u.Name,
			EnrolledAt: e.CreatedAt,
		})
	}

	if completedIDs == nil {
		completedIDs = []uint{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course": course,
		"materials": fiber.Map{
			"videos":    videos,
			"documents": documents,
			"exercises": exercises,
		},
		"total_duration":      totalDuration,
		"is_enrolled":         isEnrolled,
		"completed_materials": completedIDs,
		"participants":        participants,
	})
}

// EnrollInCourse creates the enrollment record granting material access.
// Precondition order: course exists, course is published, no existing
// enrollment. The unique index backstops the duplicate pre-check.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	student, err := resolveStudent(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only students can enroll in courses!", nil)
	}

	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.Status != models.CoursePublished {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not open for enrollment!", nil)
	}

	var existingEnrollment models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Reference: uuid.NewString(),
		Status:    models.EnrollmentOngoing,
		Progress:  0,
		StartDate: time.Now(),
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err == nil {
		go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title, enrollment.Reference)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// MarkMaterialComplete records a finished material and recomputes progress.
func MarkMaterialComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	student, err := resolveStudent(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only students can complete materials!", nil)
	}

	courseID := c.Locals("courseID").(int)
	materialID := c.Locals("materialID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var material models.Material
	if err := db.Where("id = ? AND course_id = ?", materialID, courseID).First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	var enrollment models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}

	var existingCompletion models.MaterialCompletion
	if err := db.Where("student_id = ? AND material_id = ?", student.ID, material.ID).First(&existingCompletion).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Material already marked as completed!", nil)
	}

	completion := models.MaterialCompletion{
		StudentID:  student.ID,
		CourseID:   course.ID,
		MaterialID: material.ID,
	}

	tx := db.Begin()
	if err := tx.Create(&completion).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Material already marked as completed!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark material as completed!", nil)
	}
	tx.Commit()

	updateEnrollmentProgress(student.ID, course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material marked as completed successfully!", completion)
}

func updateEnrollmentProgress(studentID uint, courseID uint) {
	db := database.Database.Db

	var totalMaterials int64
	var completedMaterials int64

	db.Model(&models.Material{}).Where("course_id = ?", courseID).Count(&totalMaterials)
	db.Model(&models.MaterialCompletion{}).Where("student_id = ? AND course_id = ?", studentID, courseID).Count(&completedMaterials)

	var enrollment models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error; err != nil {
		return
	}

	if totalMaterials > 0 {
		enrollment.Progress = float64(completedMaterials) / float64(totalMaterials) * 100
	}

	if enrollment.Progress >= 100 {
		enrollment.Status = models.EnrollmentCompleted
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	db.Save(&enrollment)
}
