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

func TestUpdateUserNIMConflictMutatesNothing(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)

	seedStudent(t, "NIM-TAKEN")
	target := seedStudent(t, "NIM-FREE")

	resp, _ := doRequest(t, app, http.MethodPatch, "/api/admin/users/"+strconv.Itoa(int(target.UserID)), token, map[string]interface{}{
		"name": "Sneaky Rename",
		"nim":  "NIM-TAKEN",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// the rejected update leaves both rows untouched
	var user models.User
	require.NoError(t, database.Database.Db.First(&user, target.UserID).Error)
	assert.Equal(t, "Student NIM-FREE", user.Name)

	var student models.Student
	require.NoError(t, database.Database.Db.First(&student, target.ID).Error)
	assert.Equal(t, "NIM-FREE", student.NIM)
}

func TestUpdateUserChangesUserAndProfileTogether(t *testing.T) {
	app := setupApp(t)
	token := createAdminToken(t)
	target := seedStudent(t, "NIM-BOTH")

	resp, _ := doRequest(t, app, http.MethodPatch, "/api/admin/users/"+strconv.Itoa(int(target.UserID)), token, map[string]interface{}{
		"name":        "Nama Baru",
		"nim":         "NIM-BARU",
		"institution": "Institut Baru",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, database.Database.Db.First(&user, target.UserID).Error)
	assert.Equal(t, "Nama Baru", user.Name)

	var student models.Student
	require.NoError(t, database.Database.Db.First(&student, target.ID).Error)
	assert.Equal(t, "NIM-BARU", student.NIM)
	assert.Equal(t, "Institut Baru", student.Institution)
}
