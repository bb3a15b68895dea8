package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"innoventum/config"
	"innoventum/database"
	"innoventum/middleware"
	"innoventum/models"
	courseRoutes "innoventum/routers/courseRoutes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp wires an isolated in-memory database and the learner-facing routes.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

// createStudent seeds a user with a student profile and returns the profile
// plus a valid bearer token.
func createStudent(t *testing.T, nim string) (models.Student, string) {
	t.Helper()

	user := models.User{
		Name:     "Student " + nim,
		Email:    nim + "@student.test",
		Role:     models.RoleStudent,
		Password: "irrelevant",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	student := models.Student{UserID: user.ID, NIM: nim}
	require.NoError(t, database.Database.Db.Create(&student).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return student, token
}

// createAdminToken seeds an admin user with no student profile.
func createAdminToken(t *testing.T) string {
	t.Helper()

	user := models.User{
		Name:     "Back Office",
		Email:    "admin@innoventum.test",
		Role:     models.RoleAdmin,
		Password: "irrelevant",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}
