package adminController_test

import (
	"innoventum/database"
	"innoventum/models"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCourseWithMaterial(t *testing.T, orderIndex int) (models.Course, models.Material) {
	t.Helper()
	course := models.Course{Title: "Course With Material", Status: models.CoursePublished}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	material := models.Material{
		CourseID:   course.ID,
		Title:      "Existing",
		Type:       models.MaterialVideo,
		ContentURL: "https://cdn.innoventum.test/existing.mp4",
		OrderIndex: orderIndex,
	}
	require.NoError(t, database.Database.Db.Create(&material).Error)
	return course, material
}

func TestCreateMateriOrderIndexConflict(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)
	course, _ := seedCourseWithMaterial(t, 1)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/admin/materi", token, map[string]interface{}{
		"course_id":   course.ID,
		"title":       "Clashing",
		"type":        models.MaterialDocument,
		"content_url": "https://cdn.innoventum.test/clash.pdf",
		"order_index": 1,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Material{}).Where("course_id = ?", course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateMateriDistinctOrderIndex(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)
	course, _ := seedCourseWithMaterial(t, 1)

	resp, envelope := doRequest(t, app, http.MethodPost, "/api/admin/materi", token, map[string]interface{}{
		"course_id":   course.ID,
		"title":       "Second Lesson",
		"type":        models.MaterialExercise,
		"content_url": "https://cdn.innoventum.test/second.pdf",
		"order_index": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["order_index"])
}

func TestCreateMateriUnknownCourse(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/admin/materi", token, map[string]interface{}{
		"course_id":   9999,
		"title":       "Orphan",
		"type":        models.MaterialVideo,
		"content_url": "https://cdn.innoventum.test/orphan.mp4",
		"order_index": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMateriOrderIndexConflict(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)
	course, first := seedCourseWithMaterial(t, 1)

	second := models.Material{
		CourseID:   course.ID,
		Title:      "Second",
		Type:       models.MaterialDocument,
		ContentURL: "https://cdn.innoventum.test/second.pdf",
		OrderIndex: 2,
	}
	require.NoError(t, database.Database.Db.Create(&second).Error)

	resp, _ := doRequest(t, app, http.MethodPatch, "/api/admin/materi/"+strconv.Itoa(int(second.ID)), token, map[string]interface{}{
		"order_index": 1,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// both rows unchanged after the rejected move
	var reloadedFirst, reloadedSecond models.Material
	require.NoError(t, database.Database.Db.First(&reloadedFirst, first.ID).Error)
	require.NoError(t, database.Database.Db.First(&reloadedSecond, second.ID).Error)
	assert.Equal(t, 1, reloadedFirst.OrderIndex)
	assert.Equal(t, 2, reloadedSecond.OrderIndex)
}

func TestDeleteMateriRemovesCompletions(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)
	course, material := seedCourseWithMaterial(t, 1)

	student := seedStudent(t, "NIM-MAT")
	completion := models.MaterialCompletion{
		StudentID:  student.ID,
		MaterialID: material.ID,
		CourseID:   course.ID,
	}
	require.NoError(t, database.Database.Db.Create(&completion).Error)

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/admin/materi/"+strconv.Itoa(int(material.ID)), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var materialCount, completionCount int64
	database.Database.Db.Model(&models.Material{}).Where("id = ?", material.ID).Count(&materialCount)
	database.Database.Db.Model(&models.MaterialCompletion{}).Where("material_id = ?", material.ID).Count(&completionCount)
	assert.EqualValues(t, 0, materialCount)
	assert.EqualValues(t, 0, completionCount)
}
