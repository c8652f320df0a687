package school

import (
	"math/rand"
	"time"
)

// Dataset is an immutable snapshot of the school: built once, then only read.
// Accessors return copies so callers cannot alter the snapshot.
type Dataset struct {
	users         []User
	courses       []Course
	grades        []Grade
	reportCards   []ReportCardEntry
	syllabi       []CourseSyllabus
	announcements []Announcement
}

// NewDataset assembles a snapshot from existing records. Inputs are copied.
func NewDataset(users []User, courses []Course, recs Records, announcements []Announcement) *Dataset {
	ds := &Dataset{
		users:         make([]User, 0, len(users)),
		courses:       make([]Course, 0, len(courses)),
		grades:        append([]Grade(nil), recs.Grades...),
		reportCards:   make([]ReportCardEntry, 0, len(recs.ReportCards)),
		syllabi:       make([]CourseSyllabus, 0, len(recs.Syllabi)),
		announcements: append([]Announcement(nil), announcements...),
	}
	for _, u := range users {
		ds.users = append(ds.users, u.Clone())
	}
	for _, c := range courses {
		ds.courses = append(ds.courses, c.Clone())
	}
	for _, e := range recs.ReportCards {
		ds.reportCards = append(ds.reportCards, e.Clone())
	}
	for _, s := range recs.Syllabi {
		ds.syllabi = append(ds.syllabi, s.Clone())
	}
	return ds
}

// Generate builds the full school dataset. rng drives every random field;
// pass nil for a clock-seeded source.
func Generate(rng *rand.Rand) *Dataset {
	if rng == nil {
		rng = NewRand(0)
	}
	users := GenerateUsers(rng)
	courses := GenerateCourses()
	recs := GenerateRecords(users, courses, NewSampler(rng))
	return NewDataset(users, courses, recs, defaultAnnouncements)
}

// NewRand returns a random source seeded with seed, or with the clock if seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (ds *Dataset) Users() []User {
	users := make([]User, len(ds.users))
	for i, u := range ds.users {
		users[i] = u.Clone()
	}
	return users
}

func (ds *Dataset) Courses() []Course {
	courses := make([]Course, len(ds.courses))
	for i, c := range ds.courses {
		courses[i] = c.Clone()
	}
	return courses
}

func (ds *Dataset) Grades() []Grade { return append([]Grade(nil), ds.grades...) }

func (ds *Dataset) ReportCards() []ReportCardEntry {
	entries := make([]ReportCardEntry, len(ds.reportCards))
	for i, e := range ds.reportCards {
		entries[i] = e.Clone()
	}
	return entries
}

func (ds *Dataset) Syllabi() []CourseSyllabus {
	syllabi := make([]CourseSyllabus, len(ds.syllabi))
	for i, s := range ds.syllabi {
		syllabi[i] = s.Clone()
	}
	return syllabi
}

func (ds *Dataset) Announcements() []Announcement {
	return append([]Announcement(nil), ds.announcements...)
}
