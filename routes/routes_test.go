package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cleaning-backend/controllers"
	"cleaning-backend/models"
	"cleaning-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.ContactMessage{},
		&models.SiteSetting{},
	))

	uploadDir := t.TempDir()
	userService := services.NewUserService(db)
	bookingService := services.NewBookingService(db, nil)
	uploadService := services.NewUploadService(uploadDir)

	router := SetupRouter(Controllers{
		Auth:     controllers.NewAuthController(userService),
		Bookings: controllers.NewBookingController(bookingService, uploadService),
		Profile:  controllers.NewProfileController(userService, uploadService),
		Contact:  controllers.NewContactController(services.NewContactService(db)),
		Admin:    controllers.NewAdminController(services.NewAdminService(db)),
		Settings: controllers.NewSettingsController(services.NewSettingsService(db)),
	}, uploadDir)

	return &testApp{db: db, router: router}
}

func (a *testApp) doJSON(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) doForm(t *testing.T, method, path string, fields map[string]string, files map[string][]byte, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, content := range files {
		fw, err := w.CreateFormFile(field, field+".jpg")
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func (a *testApp) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	rec := a.doJSON(t, http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookie(t, rec)
}

func TestSignupLoginBookingFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/api/auth/signup",
		`{"full_name":"Alice","email":"alice@example.com","password":"s3cretpass"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/auth/signup",
		`{"full_name":"Impostor","email":"alice@example.com","password":"whatever"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := app.login(t, "alice@example.com", "s3cretpass")

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	rec = app.doForm(t, http.MethodPost, "/api/bookings", map[string]string{
		"service_type": "Deep Clean",
		"date":         tomorrow,
		"time":         "10:00",
		"rooms":        "3",
		"address":      "12 Main St",
	}, map[string][]byte{"photo1": []byte("jpeg-bytes")}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(dataField(t, rec), &created))
	assert.Equal(t, models.StatusConfirmed, created.Status)
	assert.NotEmpty(t, created.Photo1)

	rec = app.doJSON(t, http.MethodGet, "/api/bookings", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(dataField(t, rec), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "Deep Clean", bookings[0].ServiceType)

	rec = app.doForm(t, http.MethodPut, fmt.Sprintf("/api/bookings/%d", created.ID), map[string]string{
		"service_type": "Deep Clean",
		"date":         tomorrow,
		"time":         "14:00",
		"rooms":        "4",
		"address":      "12 Main St",
	}, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var edited models.Booking
	require.NoError(t, json.Unmarshal(dataField(t, rec), &edited))
	assert.Equal(t, models.StatusEdited, edited.Status)
	assert.Equal(t, "4", edited.Rooms)
}

func TestBookingCreate_MissingRequiredField(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/api/auth/signup",
		`{"full_name":"Alice","email":"alice@example.com","password":"s3cretpass"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := app.login(t, "alice@example.com", "s3cretpass")

	rec = app.doForm(t, http.MethodPost, "/api/bookings", map[string]string{
		"service_type": "Deep Clean",
		// date missing
		"time":    "10:00",
		"rooms":   "3",
		"address": "12 Main St",
	}, nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditAnotherUsersBookingForbidden(t *testing.T) {
	app := newTestApp(t)

	for _, u := range []string{"alice", "bob"} {
		rec := app.doJSON(t, http.MethodPost, "/api/auth/signup",
			fmt.Sprintf(`{"full_name":%q,"email":"%s@example.com","password":"s3cretpass"}`, u, u), nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	aliceCookie := app.login(t, "alice@example.com", "s3cretpass")
	bobCookie := app.login(t, "bob@example.com", "s3cretpass")

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	fields := map[string]string{
		"service_type": "Deep Clean",
		"date":         tomorrow,
		"time":         "10:00",
		"rooms":        "3",
		"address":      "12 Main St",
	}

	rec := app.doForm(t, http.MethodPost, "/api/bookings", fields, nil, aliceCookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Booking
	require.NoError(t, json.Unmarshal(dataField(t, rec), &created))

	rec = app.doForm(t, http.MethodPut, fmt.Sprintf("/api/bookings/%d", created.ID), fields, nil, bobCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/bookings", "/api/profile", "/api/auth/me", "/api/admin/overview"} {
		rec := app.doJSON(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestAdminGateAndOverview(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/api/auth/signup",
		`{"full_name":"Alice","email":"alice@example.com","password":"s3cretpass"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	aliceCookie := app.login(t, "alice@example.com", "s3cretpass")

	rec = app.doJSON(t, http.MethodGet, "/api/admin/overview", "", aliceCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := models.User{FullName: "Site Admin", Email: "admin@cleaning.local", Password: string(hash), IsAdmin: true}
	require.NoError(t, app.db.Create(&admin).Error)
	adminCookie := app.login(t, "admin@cleaning.local", "admin123")

	rec = app.doJSON(t, http.MethodPost, "/api/contact",
		`{"full_name":"Bob","email":"bob@x.com","message":"Hi"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.doJSON(t, http.MethodGet, "/api/admin/overview", "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var overview services.AdminOverview
	require.NoError(t, json.Unmarshal(dataField(t, rec), &overview))
	assert.Len(t, overview.Users, 2)
	require.Len(t, overview.Messages, 1)
	assert.Equal(t, "Bob", overview.Messages[0].FullName)
	assert.False(t, overview.Messages[0].CreatedAt.IsZero())
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/api/auth/signup",
		`{"full_name":"Alice","email":"alice@example.com","password":"s3cretpass"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := app.login(t, "alice@example.com", "s3cretpass")

	rec = app.doJSON(t, http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout should expire the session cookie")
}

func TestSettingsPublicReadAdminWrite(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodGet, "/api/settings", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.doJSON(t, http.MethodPut, "/api/settings",
		`{"business_name":"Fabulous Cleaning Services"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := models.User{FullName: "Site Admin", Email: "admin@cleaning.local", Password: string(hash), IsAdmin: true}
	require.NoError(t, app.db.Create(&admin).Error)
	adminCookie := app.login(t, "admin@cleaning.local", "admin123")

	rec = app.doJSON(t, http.MethodPut, "/api/settings",
		`{"business_name":"Fabulous Cleaning Services","service_catalog":["Deep Clean"]}`, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.doJSON(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var setting models.SiteSetting
	require.NoError(t, json.Unmarshal(dataField(t, rec), &setting))
	assert.Equal(t, "Fabulous Cleaning Services", setting.BusinessName)
}
