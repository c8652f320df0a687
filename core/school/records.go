package school

import "fmt"

// Records holds the academic records derived from the roster and catalog.
type Records struct {
	Grades      []Grade
	ReportCards []ReportCardEntry
	Syllabi     []CourseSyllabus
}

// GenerateRecords emits one Grade, ReportCardEntry and CourseSyllabus for every
// staffed course that has a student in its section. Recess is skipped.
func GenerateRecords(users []User, courses []Course, sampler *Sampler) Records {
	var recs Records
	for _, crs := range courses {
		if crs.IsRecess() {
			continue
		}
		student, ok := firstStudentOf(users, crs.Section)
		if !ok {
			continue
		}

		recs.Grades = append(recs.Grades, Grade{
			CourseID:   crs.ID,
			StudentID:  student.ID,
			Score:      sampler.Score(),
			Feedback:   gradeFeedback,
			CourseName: crs.Name,
		})
		recs.ReportCards = append(recs.ReportCards, newReportCardEntry(crs, sampler))
		recs.Syllabi = append(recs.Syllabi, CourseSyllabus{
			CourseID:      crs.ID,
			CourseName:    crs.Name,
			TotalProgress: syllabusProgress,
			Topics:        topicsFor(crs.Name),
		})
	}
	return recs
}

func firstStudentOf(users []User, section string) (User, bool) {
	for _, u := range users {
		if u.IsStudent() && u.Grade != "" && u.Grade == section {
			return u, true
		}
	}
	return User{}, false
}

// newReportCardEntry fills the first two periods; the third is in progress
// and the fourth has not started.
func newReportCardEntry(crs Course, sampler *Sampler) ReportCardEntry {
	entry := ReportCardEntry{
		CourseID:   crs.ID,
		CourseName: crs.Name,
		Period1:    Period(sampler.Score()),
		Period2:    Period(sampler.Score()),
	}
	periods := entry.Periods()
	entry.FinalAverage = FinalAverage(periods[:]...)
	entry.DailyProgress = sampler.Score()
	entry.WeeklyProgress = sampler.Score()
	entry.MonthlyProgress = sampler.Score()
	return entry
}

func topicsFor(courseName string) []SyllabusTopic {
	topics := make([]SyllabusTopic, 0, len(topicTemplate))
	for i, t := range topicTemplate {
		topics = append(topics, SyllabusTopic{
			ID:        fmt.Sprintf("topic_%d", i),
			Title:     t.title + " - " + courseName,
			Type:      t.typ,
			Completed: i < syllabusTopicsDone,
		})
	}
	return topics
}
