package main

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/school"
)

const reportSubject = "Reporte ejecutivo"

func (cli *commandLine) report(announcementID, mailTo string) error {
	var to []*mail.Address
	if mailTo != "" {
		var err error
		if to, err = mail.ParseAddressList(mailTo); err != nil {
			return errors.Wrap(err, "parsing -mail")
		}
	}

	stats, err := cli.schoolSvc.SchoolStats()
	if err != nil {
		return err
	}
	ann, err := cli.schoolSvc.Announcement(announcementID)
	if err != nil && !(errors.Cause(err) == school.ErrNotFound && announcementID == "") {
		return errors.Wrapf(err, "finding announcement %q", announcementID)
	}

	text := cli.reportSvc.SchoolReport(context.Background(), stats, ann.Content)
	fmt.Fprintln(cli.out, text)

	if len(to) == 0 {
		return nil
	}
	addrs := make([]mail.Address, 0, len(to))
	for _, a := range to {
		addrs = append(addrs, *a)
	}
	msg, err := core.NewReportMessage(cli.schoolName, reportSubject, text, addrs...)
	if err != nil {
		return err
	}
	if err := cli.mailSvc.SendMessage(msg); err != nil {
		return errors.Wrap(err, "sending report mail")
	}
	fmt.Fprintf(cli.out, "\nenviado a %d destinatario(s)\n", len(addrs))
	return nil
}

func (cli *commandLine) stats() error {
	stats, err := cli.schoolSvc.SchoolStats()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Estudiantes: %d\n", stats.TotalStudents)
	fmt.Fprintf(cli.out, "Docentes: %d\n", stats.TotalTeachers)
	fmt.Fprintf(cli.out, "Promedio general: %d/%d\n", stats.AverageGrade, school.MaxScore)
	fmt.Fprintf(cli.out, "Asistencia: %.1f%%\n", stats.AttendanceRate)
	return nil
}
