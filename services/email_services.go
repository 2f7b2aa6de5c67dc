package services

import (
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"hypnoraffle/config"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
		from:     config.MailFrom,
	}
}

// Enabled reports whether an SMTP host is configured
func (s *EmailService) Enabled() bool {
	return s.host != ""
}

func (s *EmailService) SendWinnerEmail(to, displayName string) error {
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	htmlTemplate := strings.TrimSpace(`
From: %s
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: You won the HypnoRaffle!

<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>You won!</title>
</head>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background: linear-gradient(to right, #1a1a1a, #2d2d2d); padding: 40px 20px; text-align: center; border-radius: 12px;">
                <h1 style="color: #ffffff; margin-bottom: 30px; font-size: 24px;">Congratulations %s!</h1>
                <p style="color: #9ca3af; margin-bottom: 30px; font-size: 16px;">Your name was just drawn in the raffle. Come and see us to collect your prize.</p>
            </td>
        </tr>
    </table>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate, s.from, to, html.EscapeString(displayName)))
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, msg)
}
