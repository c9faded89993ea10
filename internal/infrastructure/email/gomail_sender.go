package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/farmanet/farmacia-api/internal/application/notificacion"
	"github.com/farmanet/farmacia-api/pkg/config"
)

var _ notificacion.EmailSender = (*GomailSender)(nil)

// GomailSender envía correos por SMTP usando gomail.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Enviar manda un correo de texto plano.
func (s *GomailSender) Enviar(destinatario, asunto, cuerpo string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", destinatario)
	m.SetHeader("Subject", asunto)
	m.SetBody("text/plain", cuerpo)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
