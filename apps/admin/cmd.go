package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"

	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/auth"
	"github.com/trezcool/colegio/core/report"
	"github.com/trezcool/colegio/core/school"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")

	commands = []string{"timetable", "login", "report", "stats"}
)

const minSuggestRatio = 0.6

type commandLine struct {
	out        io.Writer
	schoolName string
	schoolSvc  *school.Service
	authSvc    *auth.Service
	reportSvc  *report.Service
	mailSvc    core.EmailService
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  timetable -student ID                   - print a student's weekly timetable")
	fmt.Fprintln(cli.out, "  login -email EMAIL -role ROLE           - check dashboard credentials; the password is prompted next")
	fmt.Fprintln(cli.out, "  report [-announcement ID] [-mail ADDR]  - generate the executive report, optionally mailing it")
	fmt.Fprintln(cli.out, "  stats                                   - print the school stats")
}

// suggest returns the known command closest to name, if any is close enough.
func suggest(name string) string {
	var best string
	var bestRatio float64
	for _, cmd := range commands {
		ratio := difflib.NewMatcher(strings.Split(name, ""), strings.Split(cmd, "")).Ratio()
		if ratio >= minSuggestRatio && ratio > bestRatio {
			best, bestRatio = cmd, ratio
		}
	}
	return best
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	timetableCmd := cli.newFlagSet("timetable")
	timetableStudent := timetableCmd.String("student", "", "The student's ID, eg. stud_sec_3.")

	loginCmd := cli.newFlagSet("login")
	loginEmail := loginCmd.String("email", "", "The user's email.")
	loginRole := loginCmd.String("role", "", "One of ADMIN, TEACHER or STUDENT. The password will be prompted next.")

	reportCmd := cli.newFlagSet("report")
	reportAnnouncement := reportCmd.String("announcement", "", "The announcement to comment on; defaults to the latest.")
	reportMail := reportCmd.String("mail", "", "Comma separated addresses to mail the report to.")

	statsCmd := cli.newFlagSet("stats")

	switch args[1] {
	case "timetable":
		if err := timetableCmd.Parse(args[2:]); err != nil {
			return err
		}
		if strings.TrimSpace(*timetableStudent) == "" {
			timetableCmd.Usage()
			return errHelp
		}
		return cli.timetable(*timetableStudent)

	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" || *loginRole == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		return cli.login(*loginEmail, *loginRole, string(pwd))

	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.report(*reportAnnouncement, *reportMail)

	case "stats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.stats()

	default:
		if s := suggest(args[1]); s != "" {
			fmt.Fprintf(cli.out, "unknown command %q, did you mean %q?\n", args[1], s)
		}
		cli.printUsage()
		return errHelp
	}
}
