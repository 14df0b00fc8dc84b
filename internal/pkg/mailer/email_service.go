package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendStockAlert(toEmail, itemCode, itemDescription string, coverageDays float64) error
	SendPlanSummary(toEmail, planText string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendStockAlert(toEmail, itemCode, itemDescription string, coverageDays float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Critical stock: %s", itemCode))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Critical Stock Alert</h2>
			<p>Item <strong>%s</strong> (%s) has dropped to critical stock level.</p>
			<p>Estimated coverage: <strong>%.0f days</strong>.</p>
			<p>Open the Nexum dashboard to generate a purchase plan.</p>
		</div>
	`, itemCode, itemDescription, coverageDays)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send stock alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Stock alert for %s sent to %s\n", itemCode, toEmail)
	return nil
}

func (s *emailService) SendPlanSummary(toEmail, planText string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Nexum purchase plan")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Generated Purchase Plan</h2>
			<pre style="background: #f5f5f5; padding: 12px; border-radius: 4px;">%s</pre>
		</div>
	`, planText)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send plan summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Plan summary sent to %s\n", toEmail)
	return nil
}
