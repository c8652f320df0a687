package school

import (
	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core"
)

var (
	// errors
	ErrNotFound = errors.New("not found")
)

type (
	// Repository gives read access to a school Dataset.
	Repository interface {
		// QueryUsers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of User.Name or User.Email.
		QueryUsers(filter QueryFilter) ([]User, error)
		GetUserByID(id string) (User, error)
		// GetUserByEmail does a case-insensitive match on User.Email.
		GetUserByEmail(email string) (User, error)
		CountUsers(role Role) (int, error)
		GetCourseByID(id string) (Course, error)
		CoursesBySection(section string) ([]Course, error)
		CoursesByTeacher(teacherID string) ([]Course, error)
		QueryGrades() ([]Grade, error)
		GradesByStudent(studentID string) ([]Grade, error)
		GetGrade(studentID, courseID string) (Grade, error)
		ReportCardsByCourse(courseIDs ...string) ([]ReportCardEntry, error)
		SyllabiByCourse(courseIDs ...string) ([]CourseSyllabus, error)
		QueryAnnouncements() ([]Announcement, error)
	}

	// Service derives the role views from a Repository. It never writes, so it is
	// safe for concurrent use. Unknown ids give empty results, not errors.
	Service struct {
		repo           Repository
		attendanceRate float64
	}
)

func NewService(repo Repository, attendanceRate float64) *Service {
	return &Service{repo: repo, attendanceRate: attendanceRate}
}

func (svc *Service) GetUserByID(id string) (User, error) {
	return svc.repo.GetUserByID(core.CleanString(id))
}

func (svc *Service) GetUserByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *Service) Users(filter QueryFilter) ([]User, error) {
	filter.Clean()
	return svc.repo.QueryUsers(filter)
}

// CoursesForStudent returns the courses whose section is the student's grade.
func (svc *Service) CoursesForStudent(studentID string) ([]Course, error) {
	student, err := svc.repo.GetUserByID(studentID)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return []Course{}, nil
		}
		return nil, errors.Wrap(err, "finding student by ID")
	}
	if student.Grade == "" {
		return []Course{}, nil
	}
	courses, err := svc.repo.CoursesBySection(student.Grade)
	return courses, errors.Wrap(err, "querying courses by section")
}

func (svc *Service) CoursesForTeacher(teacherID string) ([]Course, error) {
	courses, err := svc.repo.CoursesByTeacher(teacherID)
	return courses, errors.Wrap(err, "querying courses by teacher")
}

func (svc *Service) studentCourseIDs(studentID string) ([]string, error) {
	courses, err := svc.CoursesForStudent(studentID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

// ReportCardForStudent returns the report card rows of the student's courses.
func (svc *Service) ReportCardForStudent(studentID string) ([]ReportCardEntry, error) {
	ids, err := svc.studentCourseIDs(studentID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []ReportCardEntry{}, nil
	}
	entries, err := svc.repo.ReportCardsByCourse(ids...)
	return entries, errors.Wrap(err, "querying report cards")
}

// SyllabusForStudent returns the syllabi of the student's courses.
func (svc *Service) SyllabusForStudent(studentID string) ([]CourseSyllabus, error) {
	ids, err := svc.studentCourseIDs(studentID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []CourseSyllabus{}, nil
	}
	syllabi, err := svc.repo.SyllabiByCourse(ids...)
	return syllabi, errors.Wrap(err, "querying syllabi")
}

func (svc *Service) GradesForStudent(studentID string) ([]Grade, error) {
	grades, err := svc.repo.GradesByStudent(studentID)
	return grades, errors.Wrap(err, "querying grades by student")
}

// SchoolStats is recomputed on every call.
func (svc *Service) SchoolStats() (SchoolStats, error) {
	students, err := svc.repo.CountUsers(RoleStudent)
	if err != nil {
		return SchoolStats{}, errors.Wrap(err, "counting students")
	}
	teachers, err := svc.repo.CountUsers(RoleTeacher)
	if err != nil {
		return SchoolStats{}, errors.Wrap(err, "counting teachers")
	}
	grades, err := svc.repo.QueryGrades()
	if err != nil {
		return SchoolStats{}, errors.Wrap(err, "querying grades")
	}

	scores := make([]int, 0, len(grades))
	for _, g := range grades {
		scores = append(scores, g.Score)
	}
	var avg int
	if mean := RoundedMean(scores...); mean != nil {
		avg = *mean
	}

	return SchoolStats{
		TotalStudents:  students,
		TotalTeachers:  teachers,
		AverageGrade:   avg,
		AttendanceRate: svc.attendanceRate,
	}, nil
}

// GradeSheet lists the students of a course owned by the teacher along with
// their current score (0 when not graded yet).
func (svc *Service) GradeSheet(teacherID, courseID string) ([]GradeSheetRow, error) {
	crs, err := svc.repo.GetCourseByID(courseID)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return []GradeSheetRow{}, nil
		}
		return nil, errors.Wrap(err, "finding course by ID")
	}
	if crs.TeacherID != teacherID {
		return []GradeSheetRow{}, nil
	}

	students, err := svc.repo.QueryUsers(QueryFilter{Role: string(RoleStudent), Grade: crs.Section})
	if err != nil {
		return nil, errors.Wrap(err, "querying section students")
	}
	rows := make([]GradeSheetRow, 0, len(students))
	for _, s := range students {
		var score int
		grade, err := svc.repo.GetGrade(s.ID, crs.ID)
		switch {
		case err == nil:
			score = grade.Score
		case errors.Cause(err) != ErrNotFound:
			return nil, errors.Wrap(err, "finding grade")
		}
		rows = append(rows, GradeSheetRow{Student: s, Score: score, Passing: IsPassing(score)})
	}
	return rows, nil
}

// TeacherName returns the display name of a course's teacher: empty for
// recess, "Docente" when the teacher is unknown.
func (svc *Service) TeacherName(teacherID string) string {
	if teacherID == RecessTeacherID {
		return ""
	}
	usr, err := svc.repo.GetUserByID(teacherID)
	if err != nil || !usr.IsTeacher() {
		return unknownTeacherName
	}
	return usr.Name
}

func (svc *Service) Announcements() ([]Announcement, error) {
	anns, err := svc.repo.QueryAnnouncements()
	return anns, errors.Wrap(err, "querying announcements")
}

// Announcement returns the announcement with the given id, or the first one
// when id is empty.
func (svc *Service) Announcement(id string) (Announcement, error) {
	anns, err := svc.Announcements()
	if err != nil {
		return Announcement{}, err
	}
	for _, a := range anns {
		if id == "" || a.ID == id {
			return a, nil
		}
	}
	return Announcement{}, ErrNotFound
}
