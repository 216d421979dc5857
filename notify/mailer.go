// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"

	"github.com/danielhkuo/fortune-wheel/models"
)

const subject = "¡Felicitaciones por tu premio en JBs!"

var bodyTemplate = template.Must(template.New("prize").Parse(`
<h2>¡Felicitaciones {{.CustomerName}}!</h2>
<p>Has ganado: {{.Award}}</p>
{{- if .Branch}}
<p>Puedes reclamar tu premio en nuestra sucursal de {{.Branch}} presentando este correo y tu factura.</p>
{{- else}}
<p>Puedes reclamar tu premio en cualquiera de nuestras sucursales presentando este correo y tu factura.</p>
{{- end}}
<p>Número de referencia: {{.ID}}</p>
<br>
<p>¡Gracias por participar!</p>
`))

// MailerConfig holds SMTP settings.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends the prize email over SMTP with STARTTLS.
type Mailer struct {
	cfg MailerConfig
}

func NewMailer(cfg MailerConfig) *Mailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Notify(ctx context.Context, spin models.Spin) error {
	msg, err := m.message(spin)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", spin.Email, err)
	}
	return nil
}

func (m *Mailer) message(spin models.Spin) (*mail.Msg, error) {
	body, err := renderBody(spin)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(spin.Email); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

func renderBody(spin models.Spin) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, spin); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}
