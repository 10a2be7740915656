package main

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"
)

type mailer interface {
	SendContact(name, email, message string) error
}

// smtpMailer delivers contact form messages with PLAIN auth.
type smtpMailer struct {
	smtp SMTPConfig
	to   string
}

func newSMTPMailer(cfg *Config) *smtpMailer {
	return &smtpMailer{smtp: cfg.SMTP, to: cfg.ToEmail}
}

func (m *smtpMailer) SendContact(name, email, message string) error {
	if m.smtp.User == "" || m.smtp.Pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + m.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.smtp.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.smtp.User, m.smtp.Pass, m.smtp.Host)
	if err := smtp.SendMail(m.smtp.Host+":"+m.smtp.Port, auth, m.smtp.User, []string{m.to}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// headerSafe rejects values that could inject extra mail headers.
func headerSafe(v string) bool {
	return !strings.ContainsAny(v, "\r\n")
}

func (a *app) submitContact(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	if name == "" || email == "" || message == "" || !headerSafe(name) || !headerSafe(email) {
		a.metrics.ContactMessages.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, e-mail address and message.",
		})
		return
	}

	if err := a.mailer.SendContact(name, email, message); err != nil {
		log.Printf("Error sending email: %v", err)
		a.metrics.ContactMessages.WithLabelValues("failed").Inc()
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	log.Println("Contact message sent")
	a.metrics.ContactMessages.WithLabelValues("sent").Inc()
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
