// File: /services/email_service.go
package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"gopkg.in/gomail.v2"
	"radlog-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer

	// In-memory storage for verification codes
	verificationCodes map[string]VerificationCode
	mutex             sync.RWMutex
}

type VerificationCode struct {
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	service := &EmailService{
		config:            cfg,
		dialer:            dialer,
		verificationCodes: make(map[string]VerificationCode),
	}

	// Start cleanup goroutine
	go service.cleanupExpiredCodes()

	return service
}

// Generate a random 4-digit verification code
func (es *EmailService) generateVerificationCode() string {
	const digits = "0123456789"
	code := make([]byte, 4)

	for i := range code {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		code[i] = digits[num.Int64()]
	}

	return string(code)
}

// Send verification email
func (es *EmailService) SendVerificationEmail(email, name string) (string, error) {
	// Check if there's already a valid unused code
	es.mutex.RLock()
	existingCode, exists := es.verificationCodes[email]
	es.mutex.RUnlock()

	var code string
	if exists && !existingCode.Used && time.Now().Before(existingCode.ExpiresAt) {
		// Reuse existing valid code
		code = existingCode.Code
	} else {
		// Generate new code
		code = es.generateVerificationCode()

		// Store verification code (expires in 10 minutes)
		es.mutex.Lock()
		es.verificationCodes[email] = VerificationCode{
			Code:      code,
			Email:     email,
			ExpiresAt: time.Now().Add(10 * time.Minute),
			Used:      false,
		}
		es.mutex.Unlock()
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "RadLog - Email Verification")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Email Verification</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h1>RadLog</h1>
        <h2>Hello %s!</h2>
        <p>Welcome to RadLog! Please verify your email address to complete your registration.</p>
        <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</p>
        <p>This code expires in 10 minutes. If you did not create a RadLog account, you can ignore this email.</p>
    </div>
</body>
</html>`, name, code)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send verification email: %w", err)
	}

	return code, nil
}

// Send welcome email after successful verification
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to RadLog!")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h1>RadLog</h1>
        <h2>Welcome aboard, %s!</h2>
        <p>Your email is verified. You can now compute waste activity densities and keep a history of your calculations.</p>
    </div>
</body>
</html>`, name)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

// VerifyCode checks a submitted code and marks it used on success
func (es *EmailService) VerifyCode(email, code string) bool {
	es.mutex.Lock()
	defer es.mutex.Unlock()

	stored, exists := es.verificationCodes[email]
	if !exists {
		return false
	}

	if stored.Used || time.Now().After(stored.ExpiresAt) {
		return false
	}

	if stored.Code != code {
		return false
	}

	stored.Used = true
	es.verificationCodes[email] = stored
	return true
}

// cleanupExpiredCodes periodically removes expired verification codes
func (es *EmailService) cleanupExpiredCodes() {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		es.mutex.Lock()
		now := time.Now()
		for email, code := range es.verificationCodes {
			if now.After(code.ExpiresAt) || code.Used {
				delete(es.verificationCodes, email)
			}
		}
		es.mutex.Unlock()
	}
}
