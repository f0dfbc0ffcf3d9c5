package notify

import (
	"errors"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/TallerTurnos01/taller-scheduler/internal/config"
)

var ErrSendTimeout = errors.New("smtp send timed out")

// Mailer envía HTML a una dirección. Mejor esfuerzo: los errores se
// loguean en el dispatcher, nunca llegan a la reserva.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return &SMTPMailer{dialer: d, from: cfg.MailFrom}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-errCh:
		return err
	case <-time.After(10 * time.Second):
		return ErrSendTimeout
	}
}
