package email

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

func NewEmailService(host, port, username, password string) *EmailService {
	return &EmailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// SendQuoteNotification alerts the studio inbox about a new quote request.
func (s *EmailService) SendQuoteNotification(to, clientName, clientEmail, serviceType, businessArea string) error {
	port, _ := strconv.Atoi(s.port)
	d := gomail.NewDialer(s.host, port, s.username, s.password)

	m := gomail.NewMessage()
	m.SetHeader("From", s.username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "New quote request")

	body := fmt.Sprintf("New quote request from %s (%s)\nService: %s\nBusiness area: %s",
		clientName, clientEmail, serviceType, businessArea)

	m.SetBody("text/plain", body)

	return d.DialAndSend(m)
}
