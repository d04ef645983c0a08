package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/santoscleaning/website-api/internal/infra/queue"
)

const notificationTemplate = `New {{.Kind}} from the website.

Name:    {{.Name}}
Email:   {{.Email}}
Phone:   {{.Phone}}
{{- if .ServiceType}}
Service: {{.ServiceType}}
{{- end}}
{{- if .Message}}
Message: {{.Message}}
{{- end}}
{{- if .Source}}
Source:  {{.Source}}
{{- end}}
`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendNotification emails the office about a new lead or booking.
func (s *EmailSender) SendNotification(payload queue.NotificationPayload) error {
	data := NotificationEmailData{
		Kind:        payload.Kind,
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		ServiceType: payload.ServiceType,
		Message:     payload.Message,
		Source:      payload.Source,
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render notification email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("New website %s: %s", payload.Kind, payload.Name))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send notification email: %w", err)
	}

	return nil
}
