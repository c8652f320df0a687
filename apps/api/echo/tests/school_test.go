package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/colegio/apps/api/echo"
	"github.com/trezcool/colegio/core/school"
)

func Test_home(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bienvenido a la API de Colegio Científico del Norte!", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func Test_schoolApi_stats(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/v1/stats")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats school.SchoolStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 14, stats.TotalStudents)
	assert.Equal(t, 14, stats.TotalTeachers)
	assert.Equal(t, 98.2, stats.AttendanceRate)
}

func Test_schoolApi_users(t *testing.T) {
	app := setup(t)

	director := school.User{
		ID:     "admin1",
		Name:   "Director General",
		Email:  "director@colegio.edu",
		Role:   school.RoleAdmin,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
	}
	notFound := marshalObj(t, map[string]string{"error": "no encontrado"})

	runHTTPTests(t, app, []httpTest{
		{name: "retrieve", method: http.MethodGet, path: "/v1/users/admin1", wantCode: http.StatusOK, wantData: marshalObj(t, director)},
		{name: "retrieve trailing slash", method: http.MethodGet, path: "/v1/users/admin1/", wantCode: http.StatusOK, wantData: marshalObj(t, director)},
		{name: "retrieve unknown", method: http.MethodGet, path: "/v1/users/nope", wantCode: http.StatusNotFound, wantData: notFound},
		{name: "filter no match", method: http.MethodGet, path: "/v1/users?search=zzz", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{name: "filter admin", method: http.MethodGet, path: "/v1/users?role=admin", wantCode: http.StatusOK, wantData: marshalObj(t, []school.User{director})},
	})

	req, rec := newRequest(http.MethodGet, "/v1/users?role=STUDENT")
	app.ServeHTTP(rec, req)
	var users []school.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 14)
}

func Test_schoolApi_student(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{name: "courses of unknown student", method: http.MethodGet, path: "/v1/students/nope/courses", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{name: "report card of unknown student", method: http.MethodGet, path: "/v1/students/nope/report-card", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{name: "syllabus of a teacher", method: http.MethodGet, path: "/v1/students/teach_1/syllabus", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{name: "grades of unknown student", method: http.MethodGet, path: "/v1/students/nope/grades", wantCode: http.StatusOK, wantData: []byte(`[]`)},
	})

	t.Run("courses", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/students/stud_sec_3/courses")
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var courses []CourseView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
		require.Len(t, courses, 11)
		for _, crs := range courses {
			assert.Equal(t, "3er Secundaria", crs.Section)
		}
		assert.Equal(t, "RECREO / LONCHERA", courses[0].Name)
		assert.Equal(t, "", courses[0].TeacherName)
		assert.Equal(t, "Prof. Pérez (Educación Física)", courses[1].TeacherName)
	})

	t.Run("schedule", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/students/stud_sec_3/schedule")
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var res ScheduleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Days, 5)
		assert.Empty(t, res.Unplaced)

		mon := res.Days[0]
		assert.Equal(t, "Lunes", mon.Name)
		require.Len(t, mon.Courses, 3)
		assert.Equal(t, "Matemáticas", mon.Courses[0].Name)
		assert.Equal(t, "RECREO / LONCHERA", mon.Courses[1].Name)
		assert.Equal(t, "Comunicación", mon.Courses[2].Name)
		assert.Equal(t, "Lun 08:00 - 10:00", mon.Courses[0].Schedule.String())

		fri := res.Days[4]
		assert.Equal(t, "Viernes", fri.Name)
		assert.Equal(t, "Educación Física", fri.Courses[0].Name)
	})

	t.Run("report card", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/students/stud_prim_2/report-card")
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var entries []school.ReportCardEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 10) // PE + 9 academic, no recess
		for _, e := range entries {
			assert.NotNil(t, e.FinalAverage)
			assert.Nil(t, e.Period3)
		}
	})
}

func Test_schoolApi_teacher(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{name: "courses of unknown teacher", method: http.MethodGet, path: "/v1/teachers/nope/courses", wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{name: "grade sheet of another teacher's course", method: http.MethodGet, path: "/v1/teachers/teach_2/courses/crs_sec_3_0/grade-sheet", wantCode: http.StatusOK, wantData: []byte(`[]`)},
	})

	t.Run("courses", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/teachers/teach_7/courses")
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var courses []CourseView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
		assert.Len(t, courses, 14) // PE of every grade level
	})

	t.Run("grade sheet", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/teachers/teach_1/courses/crs_sec_3_0/grade-sheet")
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var rows []school.GradeSheetRow
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "stud_sec_3", rows[0].Student.ID)
		assert.Equal(t, school.IsPassing(rows[0].Score), rows[0].Passing)
	})
}

func Test_schoolApi_announcements(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/v1/announcements")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var anns []school.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &anns))
	require.Len(t, anns, 2)
	assert.Equal(t, "Campeonato Deportivo", anns[0].Title)
}

func Test_unknownRoute(t *testing.T) {
	app := setup(t)
	runHTTPTests(t, app, []httpTest{
		{name: "404", method: http.MethodGet, path: "/v1/nope", wantCode: http.StatusNotFound, wantData: []byte(`{"error":"Not Found"}`)},
	})
}
