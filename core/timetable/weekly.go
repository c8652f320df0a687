// Package timetable lays courses out on a Monday to Friday grid.
package timetable

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/trezcool/colegio/core/school"
)

var dayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
}

type Day struct {
	Weekday time.Weekday    `json:"weekday"`
	Name    string          `json:"name"`
	Courses []school.Course `json:"courses"`
}

// Week holds one Day per weekday, Monday first.
type Week [5]Day

func emptyWeek() Week {
	var w Week
	for i, wd := range school.Weekdays {
		w[i] = Day{Weekday: wd, Name: dayNames[wd], Courses: []school.Course{}}
	}
	return w
}

// Day returns the bucket of a weekday; ok is false on weekends.
func (w Week) Day(wd time.Weekday) (Day, bool) {
	for _, d := range w {
		if d.Weekday == wd {
			return d, true
		}
	}
	return Day{}, false
}

// WeeklySchedule buckets courses by weekday. An all-week course lands in the
// five buckets, a single-day course in one. Courses without a known day are
// left out; see Unplaced. Each bucket is ordered by start time (unknown start
// sorts as "00:00"), then by course ID, so the result does not depend on the
// order of courses. courses is not modified.
func WeeklySchedule(courses []school.Course) Week {
	week := emptyWeek()
	for _, crs := range courses {
		for i := range week {
			if crs.Schedule.HasDay(week[i].Weekday) {
				week[i].Courses = append(week[i].Courses, crs.Clone())
			}
		}
	}
	for i := range week {
		sortCourses(week[i].Courses)
	}
	return week
}

// Unplaced returns the courses WeeklySchedule cannot put on any weekday.
func Unplaced(courses []school.Course) []school.Course {
	var out []school.Course
	for _, crs := range courses {
		var placed bool
		for _, wd := range school.Weekdays {
			if crs.Schedule.HasDay(wd) {
				placed = true
				break
			}
		}
		if !placed {
			out = append(out, crs)
		}
	}
	return out
}

func sortCourses(courses []school.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		ki, kj := courses[i].Schedule.SortKey(), courses[j].Schedule.SortKey()
		if ki != kj {
			return ki < kj
		}
		return courses[i].ID < courses[j].ID
	})
}

// Render writes the week as plain text. teacherName resolves Course.TeacherID
// and may be nil.
func (w Week) Render(out io.Writer, teacherName func(id string) string) error {
	for _, d := range w {
		if _, err := fmt.Fprintf(out, "%s\n", d.Name); err != nil {
			return err
		}
		if len(d.Courses) == 0 {
			if _, err := fmt.Fprintln(out, "  (sin clases)"); err != nil {
				return err
			}
			continue
		}
		for _, crs := range d.Courses {
			line := fmt.Sprintf("  %-13s %s", crs.Schedule.TimeRange(), crs.Name)
			if teacherName != nil {
				if name := teacherName(crs.TeacherID); name != "" {
					line += " · " + name
				}
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}
	return nil
}
