package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core/school"
	"github.com/trezcool/colegio/core/timetable"
)

type (
	schoolApi struct {
		svc *school.Service
	}

	// CourseView is a course along with its teacher's display name.
	CourseView struct {
		school.Course
		TeacherName string `json:"teacher_name"`
	}

	ScheduleDay struct {
		Name    string       `json:"name"`
		Courses []CourseView `json:"courses"`
	}

	ScheduleResponse struct {
		Days     []ScheduleDay `json:"days"`
		Unplaced []CourseView  `json:"unplaced"`
	}
)

func registerSchoolAPI(g *echo.Group, svc *school.Service) {
	api := schoolApi{svc: svc}

	g.GET("/stats", api.stats)
	g.GET("/announcements", api.announcements)

	ug := g.Group("/users")
	ug.GET("", api.queryUsers)
	ug.GET("/:id", api.retrieveUser)

	sg := g.Group("/students/:id")
	sg.GET("/courses", api.studentCourses)
	sg.GET("/schedule", api.studentSchedule)
	sg.GET("/report-card", api.studentReportCard)
	sg.GET("/syllabus", api.studentSyllabus)
	sg.GET("/grades", api.studentGrades)

	tg := g.Group("/teachers/:id")
	tg.GET("/courses", api.teacherCourses)
	tg.GET("/courses/:courseId/grade-sheet", api.gradeSheet)
}

func (api *schoolApi) views(courses []school.Course) []CourseView {
	views := make([]CourseView, 0, len(courses))
	for _, crs := range courses {
		views = append(views, CourseView{Course: crs, TeacherName: api.svc.TeacherName(crs.TeacherID)})
	}
	return views
}

// Handlers

func (api *schoolApi) stats(ctx echo.Context) error {
	stats, err := api.svc.SchoolStats()
	if err != nil {
		return errors.Wrap(err, "computing school stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *schoolApi) announcements(ctx echo.Context) error {
	anns, err := api.svc.Announcements()
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return ctx.JSON(http.StatusOK, anns)
}

func (api *schoolApi) queryUsers(ctx echo.Context) error {
	filter := new(school.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []school.User{})
	}
	users, err := api.svc.Users(*filter)
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *schoolApi) retrieveUser(ctx echo.Context) error {
	usr, err := api.svc.GetUserByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding user by ID")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *schoolApi) studentCourses(ctx echo.Context) error {
	courses, err := api.svc.CoursesForStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student courses")
	}
	return ctx.JSON(http.StatusOK, api.views(courses))
}

func (api *schoolApi) studentSchedule(ctx echo.Context) error {
	courses, err := api.svc.CoursesForStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying student courses")
	}

	week := timetable.WeeklySchedule(courses)
	res := ScheduleResponse{
		Days:     make([]ScheduleDay, 0, len(week)),
		Unplaced: api.views(timetable.Unplaced(courses)),
	}
	for _, day := range week {
		res.Days = append(res.Days, ScheduleDay{Name: day.Name, Courses: api.views(day.Courses)})
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *schoolApi) studentReportCard(ctx echo.Context) error {
	entries, err := api.svc.ReportCardForStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying report card")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *schoolApi) studentSyllabus(ctx echo.Context) error {
	syllabi, err := api.svc.SyllabusForStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying syllabus")
	}
	return ctx.JSON(http.StatusOK, syllabi)
}

func (api *schoolApi) studentGrades(ctx echo.Context) error {
	grades, err := api.svc.GradesForStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *schoolApi) teacherCourses(ctx echo.Context) error {
	courses, err := api.svc.CoursesForTeacher(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying teacher courses")
	}
	return ctx.JSON(http.StatusOK, api.views(courses))
}

func (api *schoolApi) gradeSheet(ctx echo.Context) error {
	rows, err := api.svc.GradeSheet(ctx.Param("id"), ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "building grade sheet")
	}
	return ctx.JSON(http.StatusOK, rows)
}
