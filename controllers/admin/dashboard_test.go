package adminController_test

import (
	"fmt"
	"innoventum/database"
	"innoventum/models"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStudent(t *testing.T, nim string) models.Student {
	t.Helper()
	user := models.User{
		Name:     "Student " + nim,
		Email:    nim + "@seed.test",
		Role:     models.RoleStudent,
		Password: "irrelevant",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	student := models.Student{UserID: user.ID, NIM: nim}
	require.NoError(t, database.Database.Db.Create(&student).Error)
	return student
}

func seedEnrollment(t *testing.T, studentID, courseID uint, status string) {
	t.Helper()
	e := models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    status,
		StartDate: time.Now(),
	}
	require.NoError(t, database.Database.Db.Create(&e).Error)
}

func TestDashboardEmptyDatabase(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)

	resp, envelope := doRequest(t, app, http.MethodGet, "/api/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})

	assert.EqualValues(t, 0, stats["totalMahasiswa"])
	assert.EqualValues(t, 0, stats["totalKursus"])
	assert.EqualValues(t, 0, stats["totalMentor"])
	assert.EqualValues(t, 0, stats["totalThread"])
	assert.EqualValues(t, 0, stats["totalProyek"])
	assert.EqualValues(t, 0, stats["publishedKursus"])
	assert.EqualValues(t, 0, stats["ongoingEnrollment"])
	assert.Equal(t, "0", stats["completionRate"])

	charts := data["charts"].(map[string]interface{})
	for _, name := range []string{"enrollmentTrend", "kursusByLevel", "topKursus", "proyekByStatus", "enrollmentByStatus"} {
		assert.Empty(t, charts[name], "chart %s should be empty", name)
	}

	activities := data["activities"].(map[string]interface{})
	assert.Empty(t, activities["topThreads"])
	assert.Empty(t, activities["recentEnrollments"])
}

func TestDashboardCompletionRate(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)

	course := models.Course{Title: "Go Fundamentals", Status: models.CoursePublished, Level: models.LevelBeginner}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	// 12 enrollments, 3 completed
	for i := 0; i < 12; i++ {
		student := seedStudent(t, fmt.Sprintf("NIM-%03d", i))
		status := models.EnrollmentOngoing
		if i < 3 {
			status = models.EnrollmentCompleted
		}
		seedEnrollment(t, student.ID, course.ID, status)
	}

	resp, envelope := doRequest(t, app, http.MethodGet, "/api/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})

	assert.Equal(t, "25.0", stats["completionRate"])
	assert.EqualValues(t, 12, stats["totalMahasiswa"])
	assert.EqualValues(t, 9, stats["ongoingEnrollment"])

	charts := data["charts"].(map[string]interface{})
	trend := charts["enrollmentTrend"].([]interface{})
	require.Len(t, trend, 1)
	bucket := trend[0].(map[string]interface{})
	assert.Equal(t, time.Now().Format("2006-01"), bucket["label"])
	assert.EqualValues(t, 12, bucket["count"])

	activities := data["activities"].(map[string]interface{})
	assert.Len(t, activities["recentEnrollments"], 10)
}

func TestDashboardTopCoursesRanking(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)

	// enrollment counts per course: 3, 2, 2, 1, 0, 0
	counts := []int{3, 2, 2, 1, 0, 0}
	courses := make([]models.Course, 0, len(counts))
	for i := range counts {
		course := models.Course{Title: fmt.Sprintf("Course %d", i+1), Status: models.CoursePublished}
		require.NoError(t, database.Database.Db.Create(&course).Error)
		courses = append(courses, course)
	}

	nim := 0
	for i, n := range counts {
		for j := 0; j < n; j++ {
			student := seedStudent(t, fmt.Sprintf("NIM-%03d", nim))
			nim++
			seedEnrollment(t, student.ID, courses[i].ID, models.EnrollmentOngoing)
		}
	}

	resp, envelope := doRequest(t, app, http.MethodGet, "/api/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	charts := data["charts"].(map[string]interface{})
	topKursus := charts["topKursus"].([]interface{})
	require.Len(t, topKursus, 5)

	// count descending, ties broken by course id ascending
	wantLabels := []string{"Course 1", "Course 2", "Course 3", "Course 4", "Course 5"}
	wantCounts := []int{3, 2, 2, 1, 0}
	for i, entry := range topKursus {
		point := entry.(map[string]interface{})
		assert.Equal(t, wantLabels[i], point["label"], "position %d", i)
		assert.EqualValues(t, wantCounts[i], point["count"], "position %d", i)
	}
}

func TestDashboardSkipsOrphanedRecentEnrollments(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)

	course := models.Course{Title: "Intact Course", Status: models.CoursePublished}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	student := seedStudent(t, "NIM-OK")
	seedEnrollment(t, student.ID, course.ID, models.EnrollmentOngoing)

	// enrollment pointing at a student row that no longer exists
	seedEnrollment(t, 9999, course.ID, models.EnrollmentOngoing)

	resp, envelope := doRequest(t, app, http.MethodGet, "/api/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	activities := envelope["data"].(map[string]interface{})["activities"].(map[string]interface{})
	recent := activities["recentEnrollments"].([]interface{})
	require.Len(t, recent, 1)
	entry := recent[0].(map[string]interface{})
	assert.Equal(t, "Student NIM-OK", entry["student_name"])
	assert.Equal(t, "Intact Course", entry["course_title"])
}

func TestDashboardRejectsNonAdmin(t *testing.T) {
	app := setupApp(t)
	studentToken := createStudentToken(t, "NIM-403")

	resp, _ := doRequest(t, app, http.MethodGet, "/api/admin/dashboard", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
