package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendPendingBookingReminder nudges a provider about a request that has been
// sitting in Pending.
func SendPendingBookingReminder(to, customerName, serviceName, date, timeSlot string) error {
	subject := "Pending booking request"
	body := fmt.Sprintf(
		"<p>%s requested <b>%s</b> on %s (%s) and is still waiting for a response.</p>"+
			"<p>Open the app to accept or reject the request.</p>",
		customerName, serviceName, date, timeSlot,
	)
	return SendEmail(to, subject, body)
}
