package echoapi

import (
	"net/http"
	"net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/report"
	"github.com/trezcool/colegio/core/school"
)

const reportSubject = "Reporte ejecutivo"

type (
	reportApi struct {
		school     *school.Service
		report     *report.Service
		mail       core.EmailService
		schoolName string
		validate   *validator.Validate
	}

	SchoolReportRequest struct {
		AnnouncementID string   `json:"announcement_id"`
		MailTo         []string `json:"mail_to" validate:"omitempty,dive,email"`
	}

	SchoolReportResponse struct {
		Report   string   `json:"report"`
		MailedTo []string `json:"mailed_to,omitempty"`
	}
)

func registerReportAPI(g *echo.Group, api reportApi) {
	g.POST("/reports/school", api.schoolReport)
}

func (api *reportApi) schoolReport(ctx echo.Context) error {
	var data SchoolReportRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SchoolReportRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	stats, err := api.school.SchoolStats()
	if err != nil {
		return errors.Wrap(err, "computing school stats")
	}
	ann, err := api.school.Announcement(data.AnnouncementID)
	if err != nil {
		if errors.Cause(err) == school.ErrNotFound && data.AnnouncementID != "" {
			return core.NewValidationError(
				errors.New("anuncio no encontrado"),
				core.FieldError{Field: "announcement_id", Error: "anuncio no encontrado"},
			)
		}
		if errors.Cause(err) != school.ErrNotFound {
			return errors.Wrap(err, "finding announcement")
		}
	}

	text := api.report.SchoolReport(ctx.Request().Context(), stats, ann.Content)
	res := SchoolReportResponse{Report: text}

	if len(data.MailTo) > 0 {
		to := make([]mail.Address, 0, len(data.MailTo))
		for _, addr := range data.MailTo {
			to = append(to, mail.Address{Address: addr})
		}
		msg, err := core.NewReportMessage(api.schoolName, reportSubject, text, to...)
		if err != nil {
			return errors.Wrap(err, "building report mail")
		}
		if err := api.mail.SendMessage(msg); err != nil {
			return errors.Wrap(err, "sending report mail")
		}
		res.MailedTo = data.MailTo
	}
	return ctx.JSON(http.StatusOK, res)
}
