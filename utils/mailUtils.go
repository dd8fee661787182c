package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/habitflow/apiv1/config"
)

// SendMail delivers a plain-text message through the configured SMTP server.
// With no server configured the message is dropped with a log line, which
// keeps development environments working without mail credentials.
func SendMail(cfg *config.Config, to, subject, body string) error {
	if cfg.SMTPServer == "" {
		log.Printf("mail disabled, dropping message to %s: %s", to, subject)
		return nil
	}
	addr := fmt.Sprintf("%s:%d", cfg.SMTPServer, cfg.SMTPPort)
	auth := smtp.PlainAuth("", cfg.EmailUser, cfg.EmailPassword, cfg.SMTPServer)
	msg := []byte("From: " + cfg.EmailUser + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")
	return smtp.SendMail(addr, auth, cfg.EmailUser, []string{to}, msg)
}
