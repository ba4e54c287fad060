package notifier

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/autoloan/datasync/internal/config"
)

// Notifier reports unresolved timezone codes found during an ad-spend run.
type Notifier interface {
	NotifyTimezoneErrors(errorTimezones []string) error
}

type EmailNotifier struct {
	cfg config.Email
}

func NewEmailNotifier(cfg config.Email) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

// NotifyTimezoneErrors sends one message listing the distinct offending
// timezone strings. Called after the whole batch is processed; the pipeline
// proceeds to write regardless of the outcome here.
func (n *EmailNotifier) NotifyTimezoneErrors(errorTimezones []string) error {
	if len(errorTimezones) == 0 {
		return nil
	}

	subject := "Unknown timezone code in Autoloan!!"
	body := fmt.Sprintf(
		"There is an unknown timezone code or blank timezone code in the Autoloan Adset Cost Update.\n\n"+
			"Unknown timezones: [%s]", strings.Join(errorTimezones, ", "),
	)

	if err := n.send(subject, body); err != nil {
		return fmt.Errorf("sending timezone error notification: %w", err)
	}

	logrus.WithField("timezones", errorTimezones).Info("Timezone error notification sent")
	return nil
}

// send delivers a message over SMTP with implicit TLS (port 465).
func (n *EmailNotifier) send(subject, body string) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: n.cfg.SMTPHost})
	if err != nil {
		return fmt.Errorf("dialing SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, n.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("starting SMTP session: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", n.cfg.Sender, n.cfg.Password, n.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("authenticating with SMTP server: %w", err)
	}

	if err := client.Mail(n.cfg.Sender); err != nil {
		return err
	}
	if err := client.Rcpt(n.cfg.Receiver); err != nil {
		return err
	}

	writer, err := client.Data()
	if err != nil {
		return err
	}

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.Sender, n.cfg.Receiver, subject, body)
	if _, err := writer.Write([]byte(message)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return client.Quit()
}
