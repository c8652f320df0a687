package school

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phoneRegex = regexp.MustCompile(`^9\d{8}$`)

func TestGenerateUsers(t *testing.T) {
	users := GenerateUsers(NewRand(1))
	require.Len(t, users, 1+len(Departments)+len(GradeLevels))

	admin := users[0]
	assert.Equal(t, "admin1", admin.ID)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.Equal(t, "director@colegio.edu", admin.Email)

	ids := make(map[string]bool)
	emails := make(map[string]bool)
	var teachers, students int
	for _, u := range users {
		assert.False(t, ids[u.ID], "duplicate id %s", u.ID)
		assert.False(t, emails[strings.ToLower(u.Email)], "duplicate email %s", u.Email)
		ids[u.ID], emails[strings.ToLower(u.Email)] = true, true

		switch u.Role {
		case RoleTeacher:
			assert.Equal(t, Departments[teachers], strings.TrimSuffix(strings.SplitN(u.Name, "(", 2)[1], ")"))
			teachers++
			assert.Empty(t, u.Grade)
			assert.Nil(t, u.ParentDetails)
		case RoleStudent:
			gl := GradeLevels[students]
			students++
			assert.Equal(t, "stud_"+gl.ID, u.ID)
			assert.Equal(t, gl.Name, u.Grade)
			require.NotNil(t, u.ParentDetails)
			assert.Regexp(t, phoneRegex, u.ParentDetails.FatherPhone)
			assert.Regexp(t, phoneRegex, u.ParentDetails.MotherPhone)
			assert.Regexp(t, `^Av\. Principal [1-5]\d{2}, Sector \d+$`, u.ParentDetails.Address)
		default:
			assert.Empty(t, u.Grade)
		}
	}
	assert.Equal(t, len(Departments), teachers)
	assert.Equal(t, len(GradeLevels), students)
	assert.Equal(t, "teach_1", users[1].ID)
	assert.Equal(t, "profesor14@colegio.edu", users[14].Email)
}

func TestGenerateCourses(t *testing.T) {
	courses := GenerateCourses()
	require.Len(t, courses, len(GradeLevels)*11)

	sections := make(map[string]int)
	ids := make(map[string]bool)
	for _, crs := range courses {
		assert.False(t, ids[crs.ID], "duplicate id %s", crs.ID)
		ids[crs.ID] = true
		sections[crs.Section]++

		_, ok := GradeLevelByName(crs.Section)
		assert.True(t, ok, "unknown section %q", crs.Section)
		assert.NotEmpty(t, crs.Schedule.Days)
		assert.Regexp(t, `^\d{2}:\d{2}$`, crs.Schedule.Start)

		switch {
		case strings.HasPrefix(crs.ID, "rec_"):
			assert.True(t, crs.IsRecess())
			assert.True(t, crs.Schedule.AllWeek())
			assert.Equal(t, "10:00", crs.Schedule.Start)
		case strings.HasPrefix(crs.ID, "pe_"):
			assert.Equal(t, "teach_7", crs.TeacherID)
			assert.Equal(t, "Vie 08:00 - 10:00", crs.Schedule.String())
		default:
			assert.Len(t, crs.Schedule.Days, 1)
			assert.Contains(t, []string{"08:00", "10:30"}, crs.Schedule.Start)
		}
	}
	for _, gl := range GradeLevels {
		assert.Equal(t, 11, sections[gl.Name], gl.Name)
	}
}

func TestGenerateRecords(t *testing.T) {
	users := GenerateUsers(NewRand(9))
	courses := GenerateCourses()
	recs := GenerateRecords(users, courses, NewSampler(NewRand(9)))

	staffed := len(courses) - len(GradeLevels) // minus one recess per level
	require.Len(t, recs.Grades, staffed)
	require.Len(t, recs.ReportCards, staffed)
	require.Len(t, recs.Syllabi, staffed)

	for i, g := range recs.Grades {
		assert.NotContains(t, g.CourseID, "rec_")
		assert.True(t, g.Score >= MinScore && g.Score <= MaxScore)
		assert.Equal(t, "Buen desempeño, sigue así.", g.Feedback)

		e := recs.ReportCards[i]
		assert.Equal(t, g.CourseID, e.CourseID)
		require.NotNil(t, e.Period1)
		require.NotNil(t, e.Period2)
		assert.Nil(t, e.Period3)
		assert.Nil(t, e.Period4)
		assert.Equal(t, RoundedMean(*e.Period1, *e.Period2), e.FinalAverage)
		assert.Equal(t, [4]*int{e.Period1, e.Period2, nil, nil}, e.Periods())

		s := recs.Syllabi[i]
		assert.Equal(t, 60, s.TotalProgress)
		require.Len(t, s.Topics, 10)
		assert.Equal(t, "Introducción al curso - "+s.CourseName, s.Topics[0].Title)
		assert.True(t, s.Topics[5].Completed)
		assert.False(t, s.Topics[6].Completed)
		assert.InDelta(t, 0.6, s.CompletionRatio(), 1e-9)
	}
}

func TestGenerateRecords_noStudent(t *testing.T) {
	courses := []Course{{ID: "c1", Name: "Matemáticas", TeacherID: "teach_1", Section: "1ro Primaria"}}
	recs := GenerateRecords(nil, courses, NewSampler(NewRand(1)))
	assert.Empty(t, recs.Grades)
	assert.Empty(t, recs.ReportCards)
	assert.Empty(t, recs.Syllabi)
}

func TestGenerate_seeded(t *testing.T) {
	ds1, ds2 := Generate(NewRand(5)), Generate(NewRand(5))
	assert.Equal(t, ds1.Users(), ds2.Users())
	assert.Equal(t, ds1.Grades(), ds2.Grades())
	assert.Len(t, ds1.Announcements(), 2)
}

func TestDataset_immutable(t *testing.T) {
	ds := Generate(NewRand(5))

	users := ds.Users()
	users[len(users)-1].ParentDetails.Address = "changed"
	courses := ds.Courses()
	courses[0].Schedule.Days[0] = 0
	cards := ds.ReportCards()
	*cards[0].Period1 = -1
	syllabi := ds.Syllabi()
	syllabi[0].Topics[0].Title = "changed"

	assert.NotEqual(t, "changed", ds.Users()[len(users)-1].ParentDetails.Address)
	assert.True(t, ds.Courses()[0].Schedule.AllWeek())
	assert.NotEqual(t, -1, *ds.ReportCards()[0].Period1)
	assert.NotEqual(t, "changed", ds.Syllabi()[0].Topics[0].Title)
}
