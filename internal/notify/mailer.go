package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/courtbook/server/internal/models"
)

// Mailer sends the transactional booking emails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

// formatAmount renders tetri as lari with two decimals.
func formatAmount(tetri int) string {
	return fmt.Sprintf("%.2f ₾", float64(tetri)/100)
}

// SendBookingConfirmation emails the customer after a successful booking.
// The booking must be loaded with its customer and court.
func (m *Mailer) SendBookingConfirmation(b *models.Booking) error {
	if b.Customer == nil || b.Court == nil {
		return fmt.Errorf("booking %s is missing customer or court", b.ID)
	}

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #16a34a;">Booking Confirmed!</h2>
  <p>Dear %s,</p>
  <p>Your tennis court booking has been confirmed. Here are the details:</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Booking Details</h3>
    <p><strong>Court:</strong> %s</p>
    <p><strong>Date:</strong> %s</p>
    <p><strong>Time:</strong> %s - %s</p>
    <p><strong>Amount:</strong> %s</p>
  </div>
  <p>Please arrive 10 minutes before your booking time.</p>
  <p>If you need to cancel or modify your booking, please contact the court owner.</p>
</div>`,
		b.Customer.Name, b.Court.Name, b.Date.Format("2006-01-02"),
		b.StartTime, b.EndTime, formatAmount(b.TotalAmount))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", b.Customer.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Booking Confirmation - %s", b.Court.Name))
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send booking confirmation: %w", err)
	}
	return nil
}

// SendOwnerNotification emails the court owner about a new booking, including
// the commission breakdown. The booking must be loaded with its customer and
// the court's owner.
func (m *Mailer) SendOwnerNotification(b *models.Booking) error {
	if b.Customer == nil || b.Court == nil || b.Court.Owner == nil {
		return fmt.Errorf("booking %s is missing customer or court owner", b.ID)
	}
	owner := b.Court.Owner

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #16a34a;">New Booking Received!</h2>
  <p>Dear %s,</p>
  <p>You have received a new booking for your court:</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Booking Details</h3>
    <p><strong>Court:</strong> %s</p>
    <p><strong>Date:</strong> %s</p>
    <p><strong>Time:</strong> %s - %s</p>
    <p><strong>Customer:</strong> %s (%s)</p>
    <p><strong>Total Amount:</strong> %s</p>
    <p><strong>Your Earnings:</strong> %s</p>
    <p><strong>Platform Commission:</strong> %s</p>
  </div>
  <p>The customer will arrive at the scheduled time. Please ensure the court is ready.</p>
</div>`,
		owner.Name, b.Court.Name, b.Date.Format("2006-01-02"),
		b.StartTime, b.EndTime, b.Customer.Name, b.Customer.Email,
		formatAmount(b.TotalAmount), formatAmount(b.OwnerRevenue()),
		formatAmount(b.Commission))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", owner.Email)
	msg.SetHeader("Subject", fmt.Sprintf("New Booking - %s", b.Court.Name))
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send owner notification: %w", err)
	}
	return nil
}
