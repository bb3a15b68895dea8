package utils_test

import (
	"fmt"
	"innoventum/database"
	"innoventum/models"
	"innoventum/utils"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestReconcileEnrollmentProgressRepairsDrift(t *testing.T) {
	db := setupDb(t)

	course := models.Course{Title: "Drifted Course", Status: models.CoursePublished}
	require.NoError(t, db.Create(&course).Error)
	for i := 1; i <= 4; i++ {
		m := models.Material{CourseID: course.ID, Title: fmt.Sprintf("M%d", i), Type: models.MaterialVideo, OrderIndex: i}
		require.NoError(t, db.Create(&m).Error)
	}

	user := models.User{Name: "Drift", Email: "drift@test", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	student := models.Student{UserID: user.ID, NIM: "NIM-DRIFT"}
	require.NoError(t, db.Create(&student).Error)

	// stored progress disagrees with the completion rows
	enrollment := models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    models.EnrollmentOngoing,
		Progress:  10,
		StartDate: time.Now(),
	}
	require.NoError(t, db.Create(&enrollment).Error)

	var materials []models.Material
	require.NoError(t, db.Where("course_id = ?", course.ID).Limit(2).Find(&materials).Error)
	for _, m := range materials {
		mc := models.MaterialCompletion{StudentID: student.ID, CourseID: course.ID, MaterialID: m.ID}
		require.NoError(t, db.Create(&mc).Error)
	}

	utils.ReconcileEnrollmentProgress()

	var repaired models.Enrollment
	require.NoError(t, db.First(&repaired, enrollment.ID).Error)
	assert.InDelta(t, 50.0, repaired.Progress, 0.01)
	assert.Equal(t, models.EnrollmentOngoing, repaired.Status)
}

func TestReconcileEnrollmentProgressCompletes(t *testing.T) {
	db := setupDb(t)

	course := models.Course{Title: "Finished Course", Status: models.CoursePublished}
	require.NoError(t, db.Create(&course).Error)
	material := models.Material{CourseID: course.ID, Title: "Only", Type: models.MaterialVideo, OrderIndex: 1}
	require.NoError(t, db.Create(&material).Error)

	user := models.User{Name: "Done", Email: "done@test", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	student := models.Student{UserID: user.ID, NIM: "NIM-DONE"}
	require.NoError(t, db.Create(&student).Error)

	enrollment := models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    models.EnrollmentOngoing,
		Progress:  0,
		StartDate: time.Now(),
	}
	require.NoError(t, db.Create(&enrollment).Error)

	mc := models.MaterialCompletion{StudentID: student.ID, CourseID: course.ID, MaterialID: material.ID}
	require.NoError(t, db.Create(&mc).Error)

	utils.ReconcileEnrollmentProgress()

	var repaired models.Enrollment
	require.NoError(t, db.First(&repaired, enrollment.ID).Error)
	assert.Equal(t, models.EnrollmentCompleted, repaired.Status)
	assert.NotNil(t, repaired.CompletedAt)
}

func TestReconcileThreadCounters(t *testing.T) {
	db := setupDb(t)

	thread := models.Thread{StudentID: 1, Title: "Miscounted", CommentCount: 7}
	require.NoError(t, db.Create(&thread).Error)
	for i := 0; i < 2; i++ {
		c := models.Comment{ThreadID: thread.ID, StudentID: 1, Content: fmt.Sprintf("c%d", i)}
		require.NoError(t, db.Create(&c).Error)
	}

	utils.ReconcileThreadCounters()

	var repaired models.Thread
	require.NoError(t, db.First(&repaired, thread.ID).Error)
	assert.EqualValues(t, 2, repaired.CommentCount)
}
