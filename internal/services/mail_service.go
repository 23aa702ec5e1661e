package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("MailService disabled: Missing SMTP environment variables.")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: Redaksi Kabarindo <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			log.Printf("Failed to send mail to %s: %v", strings.Join(to, ","), err)
		}
	}()
}

// SendPasswordResetEmail mengirim tautan reset password.
// Pengiriman asinkron; kegagalan hanya dicatat di log.
func (s *MailService) SendPasswordResetEmail(to, resetURL string) {
	body := fmt.Sprintf(`
		<p>Halo,</p>
		<p>Kami menerima permintaan reset password untuk akun Anda.
		Klik tautan berikut untuk membuat password baru:</p>
		<p><a href="%s">%s</a></p>
		<p>Abaikan email ini jika Anda tidak meminta reset password.</p>
	`, resetURL, resetURL)

	s.sendAsync([]string{to}, "Reset Password Kabarindo", body)
}
