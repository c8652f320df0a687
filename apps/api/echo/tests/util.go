package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/colegio/apps/api/echo"
	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/auth"
	"github.com/trezcool/colegio/core/report"
	emailsvc "github.com/trezcool/colegio/services/email"
	logsvc "github.com/trezcool/colegio/services/logger"
	"github.com/trezcool/colegio/tests"
)

var conf = &core.Config{
	AppName:    "Colegio",
	SchoolName: "Colegio Científico del Norte",
	Env:        "TEST",
	TestMode:   true,
	Server:     core.ServerConfig{DisableRequestLogs: true},
}

// stubGenerator answers every prompt with text, or fails with err.
type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

type testApp struct {
	Server
	gen  *stubGenerator
	mail *emailsvc.ConsoleService
}

func setup(t *testing.T) *testApp {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	translator := core.NewTranslator()
	validate := core.NewValidate(translator)

	schoolSvc, repo := testutil.NewService(t)
	gen := &stubGenerator{text: "## Reporte\nTodo en orden."}
	mailSvc := emailsvc.NewConsoleService(nil, conf)

	srv := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logger,
		SchoolSvc:  schoolSvc,
		AuthSvc:    auth.NewService(repo, validate, translator),
		ReportSvc:  report.NewService(gen, conf.SchoolName, logger),
		MailSvc:    mailSvc,
		Validate:   validate,
		Translator: translator,
	})
	return &testApp{Server: srv, gen: gen, mail: mailSvc}
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.Equal(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
