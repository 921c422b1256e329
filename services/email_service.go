package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/Dosada05/fantasy-draft/config"
	"github.com/Dosada05/fantasy-draft/models"
)

type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) SendEmail(to []string, subject string, body string) error {
	if s.cfg.SMTPHost == "" {
		// Mail is optional; without SMTP configuration sends are skipped.
		return nil
	}

	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)

	msg := []byte("To: " + to[0] + "\r\n" +
		"From: " + s.cfg.SMTPFrom + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	tlsconfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
	}

	var client *smtp.Client
	if s.cfg.SMTPPort == 465 {
		// Implicit TLS
		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("smtp tls dial failed: %w", err)
		}
		defer conn.Close()
		client, err = smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			return fmt.Errorf("failed to create smtp client: %w", err)
		}
	} else {
		// STARTTLS (usually port 587)
		c, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("smtp dial failed: %w", err)
		}
		client = c
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("smtp STARTTLS failed: %w", err)
		}
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("smtp MAIL FROM failed: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT TO %s failed: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish email body: %w", err)
	}

	return client.Quit()
}

var leagueInviteTemplate = template.Must(template.New("leagueInvite").Parse(`
<h2>You have been invited to {{.LeagueName}}</h2>
<p>{{.InviterName}} invited you to join their fantasy league for {{.TournamentName}}.</p>
<p>Use invite code <strong>{{.InviteCode}}</strong> to claim your seat before the draft starts.</p>
`))

// SendLeagueInvite emails a league's invite code to a prospective
// member.
func (s *EmailService) SendLeagueInvite(toEmail, inviterName string, league *models.League) error {
	tournamentName := ""
	if league.Tournament != nil {
		tournamentName = league.Tournament.Name
	}

	var body bytes.Buffer
	err := leagueInviteTemplate.Execute(&body, map[string]string{
		"LeagueName":     league.Name,
		"InviterName":    inviterName,
		"TournamentName": tournamentName,
		"InviteCode":     league.InviteCode,
	})
	if err != nil {
		return fmt.Errorf("failed to render invite email: %w", err)
	}

	subject := fmt.Sprintf("Invitation to fantasy league %q", league.Name)
	return s.SendEmail([]string{toEmail}, subject, body.String())
}
