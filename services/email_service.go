package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"motomarket-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendWelcomeEmail greets a freshly registered user. Callers fire it from a
// goroutine; a send failure must never fail the registration.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to MotoMarket")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #e63946; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>MotoMarket</h1>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Your account is ready. Browse the latest bikes, compare models side by side, and save EMI quotes for the ones you like.</p>
        </div>
        <div class="footer">
            <p>You received this email because you registered at MotoMarket.</p>
        </div>
    </div>
</body>
</html>`, name)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
		return err
	}

	return nil
}
