package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core/timetable"
)

func (cli *commandLine) timetable(studentID string) error {
	student, err := cli.schoolSvc.GetUserByID(studentID)
	if err != nil {
		return err
	}
	if !student.IsStudent() {
		return errors.Errorf("%s is not a student", studentID)
	}
	courses, err := cli.schoolSvc.CoursesForStudent(student.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "%s - %s\n\n", student.Name, student.Grade)
	week := timetable.WeeklySchedule(courses)
	if err := week.Render(cli.out, cli.schoolSvc.TeacherName); err != nil {
		return errors.Wrap(err, "rendering timetable")
	}
	for _, crs := range timetable.Unplaced(courses) {
		fmt.Fprintf(cli.out, "sin horario: %s (%s)\n", crs.Name, crs.Schedule)
	}
	return nil
}
