package inmemdb

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core/school"
)

type (
	// DB indexes a school.Dataset. Tables are filled once by Open and never
	// written afterwards, so reads need no locking.
	DB struct {
		user          *userTable
		course        *courseTable
		grade         *gradeTable
		reportCard    *reportCardTable
		syllabus      *syllabusTable
		announcements []school.Announcement
	}

	userTable struct {
		rows    []school.User // dataset order
		byID    map[string]int
		byEmail map[string]int // lower-cased email
	}

	courseTable struct {
		rows      []school.Course
		byID      map[string]int
		bySection map[string][]int
		byTeacher map[string][]int
	}

	gradeTable struct {
		rows      []school.Grade
		byStudent map[string][]int
	}

	reportCardTable struct {
		rows     []school.ReportCardEntry
		byCourse map[string][]int
	}

	syllabusTable struct {
		rows     []school.CourseSyllabus
		byCourse map[string][]int
	}
)

// Open indexes ds. It fails when user ids, user emails or course ids collide.
func Open(ds *school.Dataset) (*DB, error) {
	if ds == nil {
		return nil, errors.New("nil dataset")
	}
	db := &DB{
		user:          &userTable{byID: make(map[string]int), byEmail: make(map[string]int)},
		course:        &courseTable{byID: make(map[string]int), bySection: make(map[string][]int), byTeacher: make(map[string][]int)},
		grade:         &gradeTable{byStudent: make(map[string][]int)},
		reportCard:    &reportCardTable{byCourse: make(map[string][]int)},
		syllabus:      &syllabusTable{byCourse: make(map[string][]int)},
		announcements: ds.Announcements(),
	}

	db.user.rows = ds.Users()
	for i, u := range db.user.rows {
		email := strings.ToLower(u.Email)
		if _, ok := db.user.byID[u.ID]; ok {
			return nil, errors.Errorf("duplicate user id %q", u.ID)
		}
		if _, ok := db.user.byEmail[email]; ok {
			return nil, errors.Errorf("duplicate user email %q", u.Email)
		}
		db.user.byID[u.ID] = i
		db.user.byEmail[email] = i
	}

	db.course.rows = ds.Courses()
	for i, c := range db.course.rows {
		if _, ok := db.course.byID[c.ID]; ok {
			return nil, errors.Errorf("duplicate course id %q", c.ID)
		}
		db.course.byID[c.ID] = i
		db.course.bySection[c.Section] = append(db.course.bySection[c.Section], i)
		db.course.byTeacher[c.TeacherID] = append(db.course.byTeacher[c.TeacherID], i)
	}

	db.grade.rows = ds.Grades()
	for i, g := range db.grade.rows {
		db.grade.byStudent[g.StudentID] = append(db.grade.byStudent[g.StudentID], i)
	}

	db.reportCard.rows = ds.ReportCards()
	for i, e := range db.reportCard.rows {
		db.reportCard.byCourse[e.CourseID] = append(db.reportCard.byCourse[e.CourseID], i)
	}

	db.syllabus.rows = ds.Syllabi()
	for i, s := range db.syllabus.rows {
		db.syllabus.byCourse[s.CourseID] = append(db.syllabus.byCourse[s.CourseID], i)
	}

	return db, nil
}
