package adminController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"edumate/config"
	"edumate/database"
	"edumate/middleware"
	"edumate/models"
	adminRoutes "edumate/routers/adminRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	config.AppConfig = &config.Config{
		Env:       "test",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}
}

type fixture struct {
	app *fiber.App
	db  *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app, db)
	return &fixture{app: app, db: db}
}

func (f *fixture) user(t *testing.T, name string, role models.Role, status models.UserStatus) (models.User, string) {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password: "not-checked",
		Role:     role,
		Status:   status,
	}
	require.NoError(t, f.db.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (f *fixture) request(t *testing.T, method, target, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	resp, err := f.app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func TestListUsersAdminOnly(t *testing.T) {
	f := newFixture(t)
	_, adminToken := f.user(t, "Root", models.RoleAdmin, models.UserActive)
	_, studentToken := f.user(t, "Alice", models.RoleStudent, models.UserActive)

	resp, _ := f.request(t, http.MethodGet, "/admin/users/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = f.request(t, http.MethodGet, "/admin/users/", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env := f.request(t, http.MethodGet, "/admin/users/", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 2)
}

func TestApproveInstructorApplication(t *testing.T) {
	f := newFixture(t)
	_, adminToken := f.user(t, "Root", models.RoleAdmin, models.UserActive)
	pending, _ := f.user(t, "Jane", models.RoleInstructor, models.UserPending)

	// Setting the role to instructor on a pending account activates it
	resp, _ := f.request(t, http.MethodPut, fmt.Sprintf("/admin/users/%d", pending.ID), adminToken,
		fiber.Map{"role": "instructor"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, f.db.First(&updated, pending.ID).Error)
	assert.Equal(t, models.RoleInstructor, updated.Role)
	assert.Equal(t, models.UserActive, updated.Status)
}

func TestUpdateUserRoleValidation(t *testing.T) {
	f := newFixture(t)
	_, adminToken := f.user(t, "Root", models.RoleAdmin, models.UserActive)
	target, _ := f.user(t, "Alice", models.RoleStudent, models.UserActive)

	resp, env := f.request(t, http.MethodPut, fmt.Sprintf("/admin/users/%d", target.ID), adminToken,
		fiber.Map{"role": "superadmin"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid role specified!", env.Message)

	resp, _ = f.request(t, http.MethodPut, "/admin/users/not-a-number", adminToken,
		fiber.Map{"role": "admin"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, env = f.request(t, http.MethodPut, "/admin/users/99999", adminToken,
		fiber.Map{"role": "admin"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found!", env.Message)
}

func TestRejectInstructor(t *testing.T) {
	f := newFixture(t)
	_, adminToken := f.user(t, "Root", models.RoleAdmin, models.UserActive)
	pending, _ := f.user(t, "Jane", models.RoleInstructor, models.UserPending)

	resp, _ := f.request(t, http.MethodPost, "/admin/reject-instructor", adminToken,
		fiber.Map{"instructorId": pending.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The account is gone, not soft-deleted; the email frees up
	var count int64
	require.NoError(t, f.db.Unscoped().Model(&models.User{}).Where("id = ?", pending.ID).Count(&count).Error)
	assert.Zero(t, count)

	resp, _ = f.request(t, http.MethodPost, "/admin/reject-instructor", adminToken,
		fiber.Map{"instructorId": pending.ID})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCategoryManagement(t *testing.T) {
	f := newFixture(t)
	_, adminToken := f.user(t, "Root", models.RoleAdmin, models.UserActive)
	_, studentToken := f.user(t, "Alice", models.RoleStudent, models.UserActive)

	resp, env := f.request(t, http.MethodPost, "/admin/categories/", adminToken, fiber.Map{"name": "Programming"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Category
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env = f.request(t, http.MethodPost, "/admin/categories/", adminToken, fiber.Map{"name": "Programming"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Category with this name already exists!", env.Message)

	resp, _ = f.request(t, http.MethodPost, "/admin/categories/", studentToken, fiber.Map{"name": "Art"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = f.request(t, http.MethodPost, "/admin/categories/", adminToken, fiber.Map{"name": "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// The list is public
	resp, env = f.request(t, http.MethodGet, "/admin/categories/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 1)

	resp, _ = f.request(t, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", created.ID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	_, adminToken := f.user(t, "Root", models.RoleAdmin, models.UserActive)
	student, _ := f.user(t, "Alice", models.RoleStudent, models.UserActive)
	f.user(t, "Jane", models.RoleInstructor, models.UserPending)

	course := models.Course{Title: "Go from Scratch", Instructor: "Jane", Price: 1500}
	require.NoError(t, f.db.Create(&course).Error)
	second := models.Course{Title: "Advanced Go", Instructor: "Jane", Price: 2500}
	require.NoError(t, f.db.Create(&second).Error)

	require.NoError(t, f.db.Create(&models.Enrollment{
		UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentApproved,
	}).Error)
	require.NoError(t, f.db.Create(&models.Enrollment{
		UserID: student.ID, CourseID: second.ID, Status: models.EnrollmentPending,
	}).Error)

	resp, env := f.request(t, http.MethodGet, "/admin/dashboard/stats", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats struct {
		TotalUsers         int64   `json:"totalUsers"`
		TotalCourses       int64   `json:"totalCourses"`
		TotalEnrollments   int64   `json:"totalEnrollments"`
		PendingEnrollments int64   `json:"pendingEnrollments"`
		PendingInstructors int64   `json:"pendingInstructors"`
		Revenue            float64 `json:"revenue"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))

	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.TotalCourses)
	assert.EqualValues(t, 2, stats.TotalEnrollments)
	assert.EqualValues(t, 1, stats.PendingEnrollments)
	assert.EqualValues(t, 1, stats.PendingInstructors)

	// Only the approved enrollment counts toward revenue
	assert.InDelta(t, 1500, stats.Revenue, 0.001)
}
