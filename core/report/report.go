// Package report produces the executive summary shown on the admin dashboard.
// Text generation is delegated to a Generator; any failure degrades to a
// fixed message instead of an error.
package report

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/school"
)

const (
	FallbackUnavailable = "Error al conectar con el servicio de IA. Por favor verifique su conexión o intente más tarde."
	FallbackEmpty       = "No se pudo generar el reporte en este momento."

	MaxWords = 200
)

var promptTmpl = template.Must(template.New("prompt").Parse(`Actúa como un consultor educativo experto para el "{{.School}}".

Analiza los siguientes datos actuales del colegio:
- Total Estudiantes: {{.Stats.TotalStudents}}
- Total Docentes: {{.Stats.TotalTeachers}}
- Promedio General de Notas: {{.Stats.AverageGrade}}/{{.MaxScore}}
- Tasa de Asistencia: {{.Attendance}}%

Último anuncio importante: "{{.Announcement}}"

Genera un reporte ejecutivo breve (máximo {{.MaxWords}} palabras) en formato Markdown.
El reporte debe incluir:
1. Un análisis del rendimiento académico.
2. Una sugerencia estratégica para mejorar.
3. Un tono profesional y motivador.
`))

type (
	// Generator turns a prompt into text. Implementations return a *ServiceError
	// when the remote service cannot be reached or rejects the request.
	Generator interface {
		Generate(ctx context.Context, prompt string) (string, error)
	}

	ServiceError struct {
		Service string
		Err     error
	}

	Service struct {
		gen    Generator
		school string
		log    core.Logger
	}
)

func (err *ServiceError) Error() string {
	return err.Service + ": " + err.Err.Error()
}

func (err *ServiceError) Unwrap() error { return err.Err }

func NewServiceError(service string, err error) error {
	return &ServiceError{Service: service, Err: err}
}

// IsServiceError reports whether err comes from a Generator backend.
func IsServiceError(err error) bool {
	var serr *ServiceError
	return errors.As(err, &serr)
}

func NewService(gen Generator, schoolName string, logger core.Logger) *Service {
	return &Service{gen: gen, school: schoolName, log: logger}
}

// BuildPrompt renders the instructions sent to the Generator.
func BuildPrompt(schoolName string, stats school.SchoolStats, announcement string) (string, error) {
	var buff bytes.Buffer
	data := struct {
		School       string
		Stats        school.SchoolStats
		MaxScore     int
		Attendance   string
		Announcement string
		MaxWords     int
	}{
		School:       schoolName,
		Stats:        stats,
		MaxScore:     school.MaxScore,
		Attendance:   strconv.FormatFloat(stats.AttendanceRate, 'f', -1, 64),
		Announcement: strings.TrimSpace(announcement),
		MaxWords:     MaxWords,
	}
	if err := promptTmpl.Execute(&buff, data); err != nil {
		return "", errors.Wrap(err, "rendering report prompt")
	}
	return buff.String(), nil
}

// SchoolReport always returns displayable text: the generated report, or one
// of the fallback messages when generation fails or yields nothing.
func (svc *Service) SchoolReport(ctx context.Context, stats school.SchoolStats, announcement string) string {
	prompt, err := BuildPrompt(svc.school, stats, announcement)
	if err != nil {
		svc.log.Error("building report prompt", err)
		return FallbackUnavailable
	}

	text, err := svc.gen.Generate(ctx, prompt)
	if err != nil {
		svc.log.Error("generating school report", err)
		return FallbackUnavailable
	}
	if text = strings.TrimSpace(text); text == "" {
		svc.log.Warn("school report generator returned no text")
		return FallbackEmpty
	}
	return text
}
