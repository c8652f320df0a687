package core

import (
	"bytes"
	htmltmpl "html/template"
	"net/mail"

	"github.com/pkg/errors"
)

var reportHTML = htmltmpl.Must(htmltmpl.New("report").Parse(
	`<h2>{{.School}}</h2><p><em>{{.Subject}}</em></p><pre style="white-space: pre-wrap">{{.Body}}</pre>`,
))

type (
	EmailMessage struct {
		To          []mail.Address
		Subject     string
		TextContent string
		HTMLContent string
	}

	// EmailService is any service that can send emails
	EmailService interface {
		SendMessage(msg *EmailMessage) error
	}
)

// NewReportMessage builds the mail carrying a generated school report.
func NewReportMessage(school, subject, body string, to ...mail.Address) (*EmailMessage, error) {
	var buff bytes.Buffer
	data := struct{ School, Subject, Body string }{school, subject, body}
	if err := reportHTML.Execute(&buff, data); err != nil {
		return nil, errors.Wrap(err, "rendering report mail")
	}
	return &EmailMessage{
		To:          to,
		Subject:     subject,
		TextContent: body,
		HTMLContent: buff.String(),
	}, nil
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return (m.TextContent != "") || (m.HTMLContent != "") }
