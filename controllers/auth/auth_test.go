package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"innoventum/config"
	"innoventum/database"
	"innoventum/models"
	authRoutes "innoventum/routers/authRoutes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func registerBody(nim string) map[string]interface{} {
	return map[string]interface{}{
		"name":        "Mahasiswa " + nim,
		"email":       nim + "@kampus.ac.id",
		"password":    "rahasia-kuat",
		"nim":         nim,
		"institution": "Universitas Nusantara",
		"program":     "Sistem Informasi",
	}
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	app := setupApp(t)

	resp, envelope := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("20240001"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, models.RoleStudent, user["role"])
	// password hash never leaves the server
	_, leaked := user["password"]
	assert.False(t, leaked)

	var student models.Student
	require.NoError(t, database.Database.Db.Where("nim = ?", "20240001").First(&student).Error)
	assert.Equal(t, "Universitas Nusantara", student.Institution)

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, student.UserID).Error)
	assert.NotEqual(t, "rahasia-kuat", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("20240002"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := registerBody("20249999")
	body["email"] = "20240002@kampus.ac.id"
	resp, _ = doRequest(t, app, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterDuplicateNIM(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("20240003"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := registerBody("20240003")
	body["email"] = "lain@kampus.ac.id"
	resp, _ = doRequest(t, app, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// no orphan user row from the rolled-back transaction
	var userCount int64
	database.Database.Db.Model(&models.User{}).Count(&userCount)
	assert.EqualValues(t, 1, userCount)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := setupApp(t)

	body := registerBody("20240004")
	body["password"] = "pendek"
	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginLifecycle(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("20240005"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, envelope := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "20240005@kampus.ac.id",
		"password": "rahasia-kuat",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, models.RoleStudent, data["user"].(map[string]interface{})["role"])

	// successful login leaves an audit row
	var auditCount int64
	database.Database.Db.Model(&models.LoginAudit{}).Count(&auditCount)
	assert.EqualValues(t, 1, auditCount)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("20240006"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "20240006@kampus.ac.id",
		"password": "salah-semua",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "ghost@kampus.ac.id",
		"password": "apapun-saja",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
