package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir-rahman/studentinfo/internal/app/controllers"
	"github.com/tanvir-rahman/studentinfo/internal/app/report"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	"github.com/tanvir-rahman/studentinfo/internal/app/routes"
	"github.com/tanvir-rahman/studentinfo/internal/app/schema"
	"github.com/tanvir-rahman/studentinfo/internal/app/services"
	"github.com/tanvir-rahman/studentinfo/internal/config"
	"github.com/tanvir-rahman/studentinfo/internal/db"
	"github.com/tanvir-rahman/studentinfo/internal/seed"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(dir, "school.db")
	cfg.Database.BusyTimeoutMS = 5000

	database, err := db.NewSQLiteDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	require.NoError(t, schema.Ensure(ctx, database.DB))
	require.NoError(t, seed.IfEmpty(ctx, database, zerolog.Nop()))

	repos := repositories.NewRepositories(database.DB)
	exporter, err := report.NewExporter(filepath.Join(dir, "reports"))
	require.NoError(t, err)
	svcs := services.NewServices(database, repos, exporter)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewStudentController(svcs.Student),
		controllers.NewCourseController(svcs.Course),
		controllers.NewEnrollmentController(svcs.Enrollment),
		controllers.NewRecordController(svcs.Grade, svcs.Attendance),
		controllers.NewReportController(svcs.Report),
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestListStudents(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/students", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeData(t, recorder)
	students := envelope["data"].([]any)
	require.Len(t, students, 2)

	first := students[0].(map[string]any)
	assert.Equal(t, "101", first["roll"])
	assert.Equal(t, "John", first["firstName"])
}

func TestAddStudent(t *testing.T) {
	router := newTestRouter(t)

	body := `{"roll":"103","firstName":"Alice","lastName":"Brown","dateOfBirth":"2002-03-04","email":"alice.brown@example.com","department":"CSE","batch":"Batch-3"}`
	recorder := doRequest(t, router, http.MethodPost, "/api/v1/students", body)
	require.Equal(t, http.StatusCreated, recorder.Code)

	envelope := decodeData(t, recorder)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "103", data["roll"])
	assert.Greater(t, data["id"].(float64), float64(0))

	// The new student gets default enrollment, grade and attendance rows.
	id := strconv.FormatInt(int64(data["id"].(float64)), 10)
	recorder = doRequest(t, router, http.MethodGet, "/api/v1/students/"+id+"/grades", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	grades := decodeData(t, recorder)["data"].([]any)
	require.Len(t, grades, 1)
	assert.Equal(t, "A", grades[0].(map[string]any)["grade"])
}

func TestAddStudent_MissingField(t *testing.T) {
	router := newTestRouter(t)

	body := `{"roll":"103","firstName":"Alice"}`
	recorder := doRequest(t, router, http.MethodPost, "/api/v1/students", body)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeData(t, recorder)
	errDetail := envelope["error"].(map[string]any)
	assert.Equal(t, "VAL_001", errDetail["code"])
}

func TestSearchStudent(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/students/search?roll=101&department=CSE&batch=Batch-1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeData(t, recorder)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "John", data["firstName"])
}

func TestSearchStudent_NotFound(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/students/search?roll=999&department=CSE&batch=Batch-1", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	envelope := decodeData(t, recorder)
	errDetail := envelope["error"].(map[string]any)
	assert.Equal(t, "RES_001", errDetail["code"])
}

func TestSearchStudent_MissingParams(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/students/search?roll=101", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestStudentEnrollments_BadID(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/students/abc/enrollments", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListCourses(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/courses", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	courses := decodeData(t, recorder)["data"].([]any)
	require.Len(t, courses, 2)
	assert.Equal(t, "Mathematics", courses[0].(map[string]any)["name"])
}

func TestEnroll(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/enrollments", `{"studentId":1,"courseId":2}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	data := decodeData(t, recorder)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["studentId"])
	assert.Equal(t, float64(2), data["courseId"])
}

func TestEnroll_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/enrollments", `{"studentId":0,"courseId":2}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEnroll_UnknownCourse(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/enrollments", `{"studentId":1,"courseId":99}`)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	errDetail := decodeData(t, recorder)["error"].(map[string]any)
	assert.Equal(t, "RES_001", errDetail["code"])
}

func TestListEnrollments_Annotated(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/enrollments?annotated=true", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	enrollments := decodeData(t, recorder)["data"].([]any)
	require.Len(t, enrollments, 2)
	first := enrollments[0].(map[string]any)
	assert.Equal(t, "John", first["studentName"])
	assert.Equal(t, "Mathematics", first["courseName"])
}

func TestGetReport(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/report", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, recorder.Body.String(), "<h1>Student Information System Report</h1>")
	assert.Contains(t, recorder.Body.String(), "<td>Mathematics</td>")
}

func TestExportReport(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/report/export", "")
	require.Equal(t, http.StatusCreated, recorder.Code)

	data := decodeData(t, recorder)["data"].(map[string]any)
	path := data["path"].(string)
	assert.Contains(t, path, "StudentInformationSystemReport-")
	assert.True(t, strings.HasSuffix(path, ".html"))
}
