package school

import "strings"

// Roles
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

var AllRoles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

// ParseRole returns the Role matching s (case-insensitive).
func ParseRole(s string) (Role, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// RecessTeacherID is the teacherId of unstaffed, non-academic slots.
const RecessTeacherID = "system"

type Tier string

const (
	TierInicial    Tier = "Inicial"
	TierPrimaria   Tier = "Primaria"
	TierSecundaria Tier = "Secundaria"
)

type GradeLevel struct {
	ID   string `json:"id"`
	Name string `json:"name"` // display name, also the Course.Section join key
	Tier Tier   `json:"tier"`
}

type ParentDetails struct {
	FatherName  string `json:"father_name"`
	MotherName  string `json:"mother_name"`
	FatherPhone string `json:"father_phone"`
	MotherPhone string `json:"mother_phone"`
	FatherEmail string `json:"father_email"`
	MotherEmail string `json:"mother_email"`
	Address     string `json:"address"`
	Reference   string `json:"reference"`
}

type User struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Role          Role           `json:"role"`
	Avatar        string         `json:"avatar,omitempty"`
	Grade         string         `json:"grade,omitempty"`
	ParentDetails *ParentDetails `json:"parent_details,omitempty"`
}

func (u User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u User) IsStudent() bool { return u.Role == RoleStudent }

// Clone returns a deep copy of u.
func (u User) Clone() User {
	if u.ParentDetails != nil {
		pd := *u.ParentDetails
		u.ParentDetails = &pd
	}
	return u
}

type Course struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Schedule  Schedule `json:"schedule"`
	TeacherID string   `json:"teacher_id"`
	Section   string   `json:"section"`
}

func (c Course) IsRecess() bool { return c.TeacherID == RecessTeacherID }

func (c Course) Clone() Course {
	c.Schedule.Days = append(c.Schedule.Days[:0:0], c.Schedule.Days...)
	return c
}

type Grade struct {
	CourseID   string `json:"course_id"`
	StudentID  string `json:"student_id"`
	Score      int    `json:"score"` // 0-20
	Feedback   string `json:"feedback,omitempty"`
	CourseName string `json:"course_name,omitempty"`
}

// ReportCardEntry is the yearly record of one course. Periods are nil until evaluated.
type ReportCardEntry struct {
	CourseID        string `json:"course_id"`
	CourseName      string `json:"course_name"`
	Period1         *int   `json:"period1"`
	Period2         *int   `json:"period2"`
	Period3         *int   `json:"period3"`
	Period4         *int   `json:"period4"`
	FinalAverage    *int   `json:"final_average"`
	DailyProgress   int    `json:"daily_progress"`
	WeeklyProgress  int    `json:"weekly_progress"`
	MonthlyProgress int    `json:"monthly_progress"`
}

// Periods returns the four period scores in order.
func (e ReportCardEntry) Periods() [4]*int {
	return [4]*int{e.Period1, e.Period2, e.Period3, e.Period4}
}

func (e ReportCardEntry) Clone() ReportCardEntry {
	cp := func(p *int) *int {
		if p == nil {
			return nil
		}
		return Period(*p)
	}
	e.Period1, e.Period2, e.Period3, e.Period4 = cp(e.Period1), cp(e.Period2), cp(e.Period3), cp(e.Period4)
	e.FinalAverage = cp(e.FinalAverage)
	return e
}

type TopicType string

const (
	TopicTheory   TopicType = "theory"
	TopicPractice TopicType = "practice"
)

type SyllabusTopic struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      TopicType `json:"type"`
	Completed bool      `json:"completed"`
}

type CourseSyllabus struct {
	CourseID      string          `json:"course_id"`
	CourseName    string          `json:"course_name"`
	TotalProgress int             `json:"total_progress"` // 0-100, not derived from Topics
	Topics        []SyllabusTopic `json:"topics"`
}

func (s CourseSyllabus) Clone() CourseSyllabus {
	s.Topics = append([]SyllabusTopic(nil), s.Topics...)
	return s
}

// CompletionRatio is the share of completed topics, in [0, 1].
func (s CourseSyllabus) CompletionRatio() float64 {
	if len(s.Topics) == 0 {
		return 0
	}
	var done int
	for _, t := range s.Topics {
		if t.Completed {
			done++
		}
	}
	return float64(done) / float64(len(s.Topics))
}

type SchoolStats struct {
	TotalStudents  int     `json:"total_students"`
	TotalTeachers  int     `json:"total_teachers"`
	AverageGrade   int     `json:"average_grade"` // 0-20
	AttendanceRate float64 `json:"attendance_rate"`
}

// AttendanceRecord is reserved for an attendance ledger; nothing produces it yet.
type AttendanceRecord struct {
	Date      string `json:"date"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	Present   bool   `json:"present"`
}

type Announcement struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Author  string `json:"author"`
}

// GradeSheetRow is one line of a teacher's grade-entry sheet.
type GradeSheetRow struct {
	Student User `json:"student"`
	Score   int  `json:"score"`
	Passing bool `json:"passing"`
}

type QueryFilter struct {
	Search string `query:"search"`
	Role   string `query:"role"`
	Grade  string `query:"grade"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = strings.TrimSpace(qf.Search)
	qf.Role = strings.ToUpper(strings.TrimSpace(qf.Role))
	qf.Grade = strings.TrimSpace(qf.Grade)
}
