package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	echoapi "github.com/trezcool/colegio/apps/api/echo"
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
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	defer logger.Close()

	// generate the school once; everything after this only reads it
	ds := school.Generate(school.NewRand(conf.RandomSeed))
	db, err := inmemdb.Open(ds)
	if err != nil {
		logger.Fatal(fmt.Sprintf("indexing dataset: %v", err), err)
	}
	repo := inmemdb.NewSchoolRepository(db)

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(log.New(os.Stdout, "MAIL : ", log.LstdFlags), conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	var gen report.Generator
	gemini, err := aisvc.NewGeminiGenerator(context.Background(), conf.Gemini)
	if err != nil {
		logger.Warn(fmt.Sprintf("AI reports disabled: %v", err), err)
		gen = aisvc.Unavailable{Reason: err}
	} else {
		defer gemini.Close()
		gen = gemini
	}

	translator := core.NewTranslator()
	validate := core.NewValidate(translator)

	schoolSvc := school.NewService(repo, conf.AttendanceRate)
	authSvc := auth.NewService(repo, validate, translator)
	reportSvc := report.NewService(gen, conf.SchoolName, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("seed").Set(strconv.FormatInt(conf.RandomSeed, 10))
	expvar.Publish("stats", expvar.Func(func() interface{} {
		stats, _ := schoolSvc.SchoolStats()
		return stats
	}))

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		SchoolSvc:  schoolSvc,
		AuthSvc:    authSvc,
		ReportSvc:  reportSvc,
		MailSvc:    mailSvc,
		Validate:   validate,
		Translator: translator,
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
