// utils/notify.go
package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/top5deutschland/top5_backend/models"
)

// NotifyAdminOfRegistration emails the platform admin about a new
// public registration. Delivery is best effort; a failure is logged and
// never blocks the registration itself.
func NotifyAdminOfRegistration(provider models.Provider) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	if adminEmail == "" || smtpHost == "" || smtpUser == "" || smtpPass == "" {
		logrus.Debug("registration mail skipped: SMTP not configured")
		return nil
	}

	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if portNum, err := strconv.Atoi(portStr); err == nil && portNum > 0 {
			smtpPort = portNum
		}
	}

	subject := fmt.Sprintf("New registration: %s", provider.Name)
	body := fmt.Sprintf(
		"A new business registered and is awaiting approval.\n\nName: %s\nCategory: %s\nCity: %s\nAddress: %s\nPhone: %s\nTier: %s\n",
		provider.Name, provider.Category, provider.City, provider.Address, provider.Phone, provider.Tier,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", adminEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	if err := d.DialAndSend(m); err != nil {
		logrus.WithError(err).Warn("failed to send registration mail")
		return err
	}
	return nil
}
