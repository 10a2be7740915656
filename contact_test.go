package main

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	name, email, message string
}

type fakeMailer struct {
	sent []sentMessage
	err  error
}

func (m *fakeMailer) SendContact(name, email, message string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{name, email, message})
	return nil
}

func contactForm(name, email, message string) url.Values {
	return url.Values{"fullName": {name}, "email": {email}, "message": {message}}
}

func TestContactFormFragment(t *testing.T) {
	c := newTestServer(t, scenarioCatalog()).client(t)

	rec := c.get("/contact-form")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="fullName"`)
}

func TestContactSubmitSends(t *testing.T) {
	srv := newTestServer(t, scenarioCatalog())
	c := srv.client(t)

	rec := c.post("/contact", contactForm("Ada", "ada@example.com", "Hello"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thank you for your message")
	assert.Equal(t, []sentMessage{{"Ada", "ada@example.com", "Hello"}}, srv.mail.sent)
}

func TestContactSubmitDoesNotLogAddress(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	srv := newTestServer(t, scenarioCatalog())
	rec := srv.client(t).post("/contact", contactForm("Ada", "ada@example.com", "Hello"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, buf.String(), "Contact message sent")
	assert.NotContains(t, buf.String(), "ada@example.com")
	assert.NotContains(t, buf.String(), srv.app.hashIP("ada@example.com"))
}

func TestContactSubmitMailerError(t *testing.T) {
	srv := newTestServer(t, scenarioCatalog())
	srv.mail.err = errors.New("smtp down")

	rec := srv.client(t).post("/contact", contactForm("Ada", "ada@example.com", "Hello"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "error sending your message")
}

func TestContactSubmitRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"missing name", contactForm("", "ada@example.com", "Hello")},
		{"missing email", contactForm("Ada", "", "Hello")},
		{"missing message", contactForm("Ada", "ada@example.com", " ")},
		{"header injection", contactForm("Ada", "ada@example.com\r\nBcc: x@example.com", "Hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, scenarioCatalog())
			rec := srv.client(t).post("/contact", tt.form, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "contact-result error")
			assert.Empty(t, srv.mail.sent)
		})
	}
}

func TestSMTPMailerRequiresCredentials(t *testing.T) {
	m := newSMTPMailer(&Config{SMTP: SMTPConfig{Host: "localhost", Port: "25"}, ToEmail: "me@example.com"})

	err := m.SendContact("Ada", "ada@example.com", "Hello")
	assert.ErrorContains(t, err, "credentials")
}
