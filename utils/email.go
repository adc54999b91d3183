package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends an HTML email using SMTP
func SendEmail(to, subject, body string) error {
	config := emailConfigFromEnv()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendOTP sends a registration OTP via email
func SendOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to DukaanDesk!</h2>
		<p>Thank you for registering your store. Please use the following OTP to verify your email address:</p>
		<h1 style="color: #4CAF50; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This OTP will expire in 15 minutes.</p>
		<p>If you didn't request this OTP, please ignore this email.</p>
	`, otp)

	return SendEmail(to, "Your DukaanDesk Registration OTP", body)
}
