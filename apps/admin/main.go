package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/auth"
	"github.com/trezcool/colegio/core/report"
	"github.com/trezcool/colegio/core/school"
	aisvc "github.com/trezcool/colegio/services/ai"
	emailsvc "github.com/trezcool/colegio/services/email"
	logsvc "github.com/trezcool/colegio/services/logger"
	inmemdb "github.com/trezcool/colegio/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	db, err := inmemdb.Open(school.Generate(school.NewRand(conf.RandomSeed)))
	if err != nil {
		logger.Fatal(fmt.Sprintf("indexing dataset: %v", err), err)
	}
	repo := inmemdb.NewSchoolRepository(db)

	var gen report.Generator
	gemini, err := aisvc.NewGeminiGenerator(context.Background(), conf.Gemini)
	if err != nil {
		gen = aisvc.Unavailable{Reason: err}
	} else {
		gen = gemini
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(log.New(os.Stdout, "MAIL : ", log.LstdFlags), conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	translator := core.NewTranslator()
	cli := commandLine{
		out:        os.Stdout,
		schoolName: conf.SchoolName,
		schoolSvc:  school.NewService(repo, conf.AttendanceRate),
		authSvc:    auth.NewService(repo, core.NewValidate(translator), translator),
		reportSvc:  report.NewService(gen, conf.SchoolName, logger),
		mailSvc:    mailSvc,
	}

	err = cli.run(os.Args)
	if gemini != nil {
		_ = gemini.Close()
	}
	logger.Close()
	if err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
