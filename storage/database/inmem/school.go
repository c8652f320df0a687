package inmemdb

import (
	"sort"
	"strings"

	"github.com/trezcool/colegio/core/school"
)

type schoolRepository struct {
	db *DB
}

var _ school.Repository = (*schoolRepository)(nil) // interface compliance check

func NewSchoolRepository(db *DB) school.Repository {
	return &schoolRepository{db: db}
}

func (repo *schoolRepository) QueryUsers(filter school.QueryFilter) ([]school.User, error) {
	search := strings.ToLower(filter.Search)
	users := make([]school.User, 0)
	for _, u := range repo.db.user.rows {
		// users with search keyword matching any Name or Email
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if filter.Role != "" && string(u.Role) != filter.Role {
			continue
		}
		if filter.Grade != "" && u.Grade != filter.Grade {
			continue
		}
		users = append(users, u.Clone())
	}
	return users, nil
}

func (repo *schoolRepository) GetUserByID(id string) (school.User, error) {
	if i, ok := repo.db.user.byID[id]; ok {
		return repo.db.user.rows[i].Clone(), nil
	}
	return school.User{}, school.ErrNotFound
}

func (repo *schoolRepository) GetUserByEmail(email string) (school.User, error) {
	if i, ok := repo.db.user.byEmail[strings.ToLower(email)]; ok {
		return repo.db.user.rows[i].Clone(), nil
	}
	return school.User{}, school.ErrNotFound
}

func (repo *schoolRepository) CountUsers(role school.Role) (int, error) {
	var n int
	for _, u := range repo.db.user.rows {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (repo *schoolRepository) GetCourseByID(id string) (school.Course, error) {
	if i, ok := repo.db.course.byID[id]; ok {
		return repo.db.course.rows[i].Clone(), nil
	}
	return school.Course{}, school.ErrNotFound
}

func (repo *schoolRepository) courses(idxs []int) []school.Course {
	courses := make([]school.Course, 0, len(idxs))
	for _, i := range idxs {
		courses = append(courses, repo.db.course.rows[i].Clone())
	}
	return courses
}

func (repo *schoolRepository) CoursesBySection(section string) ([]school.Course, error) {
	return repo.courses(repo.db.course.bySection[section]), nil
}

func (repo *schoolRepository) CoursesByTeacher(teacherID string) ([]school.Course, error) {
	return repo.courses(repo.db.course.byTeacher[teacherID]), nil
}

func (repo *schoolRepository) QueryGrades() ([]school.Grade, error) {
	return append([]school.Grade{}, repo.db.grade.rows...), nil
}

func (repo *schoolRepository) GradesByStudent(studentID string) ([]school.Grade, error) {
	idxs := repo.db.grade.byStudent[studentID]
	grades := make([]school.Grade, 0, len(idxs))
	for _, i := range idxs {
		grades = append(grades, repo.db.grade.rows[i])
	}
	return grades, nil
}

func (repo *schoolRepository) GetGrade(studentID, courseID string) (school.Grade, error) {
	for _, i := range repo.db.grade.byStudent[studentID] {
		if g := repo.db.grade.rows[i]; g.CourseID == courseID {
			return g, nil
		}
	}
	return school.Grade{}, school.ErrNotFound
}

// ReportCardsByCourse keeps dataset order, whatever the order of courseIDs.
func (repo *schoolRepository) ReportCardsByCourse(courseIDs ...string) ([]school.ReportCardEntry, error) {
	idxs := collect(repo.db.reportCard.byCourse, courseIDs)
	entries := make([]school.ReportCardEntry, 0, len(idxs))
	for _, i := range idxs {
		entries = append(entries, repo.db.reportCard.rows[i].Clone())
	}
	return entries, nil
}

// SyllabiByCourse keeps dataset order, whatever the order of courseIDs.
func (repo *schoolRepository) SyllabiByCourse(courseIDs ...string) ([]school.CourseSyllabus, error) {
	idxs := collect(repo.db.syllabus.byCourse, courseIDs)
	syllabi := make([]school.CourseSyllabus, 0, len(idxs))
	for _, i := range idxs {
		syllabi = append(syllabi, repo.db.syllabus.rows[i].Clone())
	}
	return syllabi, nil
}

func (repo *schoolRepository) QueryAnnouncements() ([]school.Announcement, error) {
	return append([]school.Announcement{}, repo.db.announcements...), nil
}

// collect returns the row indexes of all keys, ascending and without duplicates.
func collect(index map[string][]int, keys []string) []int {
	seen := make(map[int]bool)
	var idxs []int
	for _, k := range keys {
		for _, i := range index[k] {
			if !seen[i] {
				seen[i] = true
				idxs = append(idxs, i)
			}
		}
	}
	sort.Ints(idxs)
	return idxs
}
