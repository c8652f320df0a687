package school

import (
	"fmt"
	"math/rand"
	"strings"
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// GenerateUsers builds the roster: the admin, one teacher per department and
// one student per grade level, in that order.
func GenerateUsers(rng *rand.Rand) []User {
	users := make([]User, 0, 1+len(Departments)+len(GradeLevels))
	users = append(users, User{
		ID:     "admin1",
		Name:   "Director General",
		Email:  "director@colegio.edu",
		Role:   RoleAdmin,
		Avatar: avatarBaseURL + "Admin",
	})
	users = append(users, generateTeachers()...)
	users = append(users, generateStudents(rng)...)
	return users
}

func teacherID(idx int) string { return fmt.Sprintf("teach_%d", idx+1) }

func generateTeachers() []User {
	teachers := make([]User, 0, len(Departments))
	for i, dept := range Departments {
		teachers = append(teachers, User{
			ID:     teacherID(i),
			Name:   fmt.Sprintf("Prof. %s (%s)", teacherSurnames[i], dept),
			Email:  fmt.Sprintf("profesor%d@colegio.edu", i+1),
			Role:   RoleTeacher,
			Avatar: fmt.Sprintf("%sTeacher%d", avatarBaseURL, i),
		})
	}
	return teachers
}

func generateStudents(rng *rand.Rand) []User {
	students := make([]User, 0, len(GradeLevels))
	for i, gl := range GradeLevels {
		profile := studentProfiles[i]
		lastLower := strings.ToLower(profile.lastName)
		students = append(students, User{
			ID:     "stud_" + gl.ID,
			Name:   profile.firstName + " " + profile.lastName,
			Email:  fmt.Sprintf("alumno.%s@colegio.edu", gl.ID),
			Role:   RoleStudent,
			Grade:  gl.Name,
			Avatar: avatarBaseURL + profile.firstName + profile.lastName,
			ParentDetails: &ParentDetails{
				FatherName:  "Sr. Juan " + profile.lastName,
				MotherName:  "Sra. Ana " + profile.lastName,
				FatherPhone: phoneNumber(rng),
				MotherPhone: phoneNumber(rng),
				FatherEmail: fmt.Sprintf("juan.%s@gmail.com", lastLower),
				MotherEmail: fmt.Sprintf("ana.%s@hotmail.com", lastLower),
				Address:     fmt.Sprintf("Av. Principal %d, Sector %d", 100+rng.Intn(500), i+1),
				Reference:   fmt.Sprintf("Cerca al parque del Sector %d, casa de 2 pisos", i+1),
			},
		})
	}
	return students
}

// phoneNumber returns a 9 digit mobile number starting with 9.
func phoneNumber(rng *rand.Rand) string {
	return fmt.Sprintf("9%d", 10000000+rng.Intn(90000000))
}

// GenerateCourses builds the course catalog of every grade level: recess,
// physical education and the nine academic courses of the level's tier.
func GenerateCourses() []Course {
	courses := make([]Course, 0, len(GradeLevels)*11)
	for _, gl := range GradeLevels {
		courses = append(courses, Course{
			ID:        "rec_" + gl.ID,
			Name:      recessName,
			Schedule:  MustParseSchedule(recessSlot),
			TeacherID: RecessTeacherID,
			Section:   gl.Name,
		})
		courses = append(courses, Course{
			ID:        "pe_" + gl.ID,
			Name:      peName,
			Schedule:  MustParseSchedule(peSlot),
			TeacherID: teacherID(peTeacherIndex),
			Section:   gl.Name,
		})
		for i, subj := range curricula[gl.Tier] {
			courses = append(courses, Course{
				ID:        fmt.Sprintf("crs_%s_%d", gl.ID, i),
				Name:      subj.name,
				Schedule:  MustParseSchedule(subj.slot),
				TeacherID: teacherID(subj.teacherIdx),
				Section:   gl.Name,
			})
		}
	}
	return courses
}
