package adminController

import (
	"fmt"
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// ChartPoint is the {label, count} shape every chart series uses. The admin
// frontend binds to these keys, so they must stay stable.
type ChartPoint struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type threadActivity struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	ViewCount int64  `json:"view_count"`
}

type recentEnrollment struct {
	StudentName string    `json:"student_name"`
	CourseTitle string    `json:"course_title"`
	EnrolledAt  time.Time `json:"enrolled_at"`
}

// DashboardStats produces the aggregated statistics document for the admin
// dashboard. The queries target disjoint data and run concurrently; any
// failure fails the whole request with no partial result.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var (
		totalMahasiswa, totalKursus, totalMentor, totalThread, totalProyek int64
		publishedKursus, ongoingEnrollment                                 int64
		totalEnrollment, completedEnrollment                               int64

		enrollmentTrend    = make([]ChartPoint, 0, 6)
		kursusByLevel      = make([]ChartPoint, 0)
		topKursus          = make([]ChartPoint, 0)
		proyekByStatus     = make([]ChartPoint, 0)
		enrollmentByStatus = make([]ChartPoint, 0)

		topThreads        = make([]threadActivity, 0)
		recentEnrollments = make([]recentEnrollment, 0)
	)

	var g errgroup.Group

	g.Go(func() error {
		return db.Model(&models.Student{}).Count(&totalMahasiswa).Error
	})
	g.Go(func() error {
		return db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalKursus).Error
	})
	g.Go(func() error {
		return db.Model(&models.Mentor{}).Where("status = ?", models.MentorActive).Count(&totalMentor).Error
	})
	g.Go(func() error {
		return db.Model(&models.Thread{}).Where("is_deleted = ?", false).Count(&totalThread).Error
	})
	g.Go(func() error {
		return db.Model(&models.ProyekBisnis{}).Count(&totalProyek).Error
	})
	g.Go(func() error {
		return db.Model(&models.Course{}).Where("is_deleted = ? AND status = ?", false, models.CoursePublished).Count(&publishedKursus).Error
	})
	g.Go(func() error {
		return db.Model(&models.Enrollment{}).Where("status = ?", models.EnrollmentOngoing).Count(&ongoingEnrollment).Error
	})
	g.Go(func() error {
		return db.Model(&models.Enrollment{}).Count(&totalEnrollment).Error
	})
	g.Go(func() error {
		return db.Model(&models.Enrollment{}).Where("status = ?", models.EnrollmentCompleted).Count(&completedEnrollment).Error
	})

	// 6-month trailing enrollment trend, oldest bucket first. Bucketing is
	// done with one range count per month so it behaves the same on every
	// supported database. Months without enrollments are omitted.
	g.Go(func() error {
		now := time.Now()
		for i := 5; i >= 0; i-- {
			ref := now.AddDate(0, -i, 0)
			start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
			end := start.AddDate(0, 1, 0)

			var count int64
			if err := db.Model(&models.Enrollment{}).
				Where("start_date >= ? AND start_date < ?", start, end).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				enrollmentTrend = append(enrollmentTrend, ChartPoint{Label: start.Format("2006-01"), Count: count})
			}
		}
		return nil
	})

	g.Go(func() error {
		return db.Model(&models.Course{}).
			Select("level as label, count(*) as count").
			Where("is_deleted = ?", false).
			Group("level").Order("level asc").
			Scan(&kursusByLevel).Error
	})

	// Top 5 courses by enrollment count; ties break by course id ascending
	g.Go(func() error {
		return db.Model(&models.Course{}).
			Select("courses.title as label, count(enrollments.id) as count").
			Joins("left join enrollments on enrollments.course_id = courses.id AND enrollments.deleted_at IS NULL").
			Where("courses.is_deleted = ?", false).
			Group("courses.id, courses.title").
			Order("count desc, courses.id asc").
			Limit(5).
			Scan(&topKursus).Error
	})

	g.Go(func() error {
		return db.Model(&models.ProyekBisnis{}).
			Select("status as label, count(*) as count").
			Group("status").Order("status asc").
			Scan(&proyekByStatus).Error
	})

	g.Go(func() error {
		return db.Model(&models.Enrollment{}).
			Select("status as label, count(*) as count").
			Group("status").Order("status asc").
			Scan(&enrollmentByStatus).Error
	})

	// Top 5 threads by view count; ties break by thread id ascending
	g.Go(func() error {
		return db.Model(&models.Thread{}).
			Select("id, title, view_count").
			Where("is_deleted = ?", false).
			Order("view_count desc, id asc").
			Limit(5).
			Scan(&topThreads).Error
	})

	g.Go(func() error {
		var enrollments []models.Enrollment
		if err := db.Order("created_at desc").Limit(10).Find(&enrollments).Error; err != nil {
			return err
		}
		for _, e := range enrollments {
			// Skip entries whose student, user or course row is gone
			var student models.Student
			if err := db.Where("id = ?", e.StudentID).First(&student).Error; err != nil {
				continue
			}
			var user models.User
			if err := db.Where("id = ?", student.UserID).First(&user).Error; err != nil {
				continue
			}
			var course models.Course
			if err := db.Where("id = ?", e.CourseID).First(&course).Error; err != nil {
				continue
			}
			recentEnrollments = append(recentEnrollments, recentEnrollment{
				StudentName: user.Name,
				CourseTitle: course.Title,
				EnrolledAt:  e.CreatedAt,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard statistics!", nil)
	}

	completionRate := "0"
	if totalEnrollment > 0 {
		completionRate = fmt.Sprintf("%.1f", float64(completedEnrollment)/float64(totalEnrollment)*100)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard statistics fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"totalMahasiswa":    totalMahasiswa,
			"totalKursus":       totalKursus,
			"totalMentor":       totalMentor,
			"totalThread":       totalThread,
			"totalProyek":       totalProyek,
			"publishedKursus":   publishedKursus,
			"ongoingEnrollment": ongoingEnrollment,
			"completionRate":    completionRate,
		},
		"charts": fiber.Map{
			"enrollmentTrend":    enrollmentTrend,
			"kursusByLevel":      kursusByLevel,
			"topKursus":          topKursus,
			"proyekByStatus":     proyekByStatus,
			"enrollmentByStatus": enrollmentByStatus,
		},
		"activities": fiber.Map{
			"topThreads":        topThreads,
			"recentEnrollments": recentEnrollments,
		},
	})
}
