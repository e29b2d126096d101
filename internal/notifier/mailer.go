package notifier

import (
	"classbook/internal/events"
	"fmt"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"
)

const (
	subjectWelcome      = "Welcome to Classroom Booking System"
	subjectConfirmation = "Booking Confirmation"
	subjectCancellation = "Booking Cancellation Confirmation"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee;">
  <h2 style="color: #4285f4;">Welcome to Classroom Booking System</h2>
  <p>Hello {{.Name}},</p>
  <p>Your account has been successfully created.</p>
  <p><strong>User ID:</strong> {{.UserID}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p>You can now log in and start booking classrooms.</p>
  <p>Regards,<br>Classroom Booking System Team</p>
</div>`))

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee;">
  <h2 style="color: #4285f4;">Booking Confirmation</h2>
  <p>Hello {{.UserName}},</p>
  <p>Your booking has been confirmed.</p>
  <p><strong>Booking ID:</strong> {{.BookingID}}</p>
  <p><strong>Room:</strong> {{.RoomName}}</p>
  <p><strong>Date:</strong> {{.BookingDate}}</p>
  <p><strong>Time:</strong> {{.StartTime}} - {{.EndTime}}</p>
  <p>If you need to cancel this booking, please visit your profile page.</p>
  <p>Regards,<br>Classroom Booking System Team</p>
</div>`))

var cancellationTemplate = template.Must(template.New("cancellation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee;">
  <h2 style="color: #f44336;">Booking Cancellation</h2>
  <p>Hello {{.UserName}},</p>
  <p>Your booking has been cancelled successfully.</p>
  <p><strong>Booking ID:</strong> {{.BookingID}}</p>
  <p><strong>Room:</strong> {{.RoomName}}</p>
  <p><strong>Date:</strong> {{.BookingDate}}</p>
  <p><strong>Time:</strong> {{.StartTime}} - {{.EndTime}}</p>
  <p>You can make a new booking through the dashboard at any time.</p>
  <p>Regards,<br>Classroom Booking System Team</p>
</div>`))

// Mailer renders event payloads into mails and hands them to the sender.
type Mailer struct {
	sender Sender
}

func NewMailer(sender Sender) *Mailer {
	return &Mailer{sender: sender}
}

func (m *Mailer) SendWelcome(event events.UserEvent) error {
	body, err := render(welcomeTemplate, event)
	if err != nil {
		return err
	}

	if err := m.sender.Send(event.Email, subjectWelcome, body); err != nil {
		return fmt.Errorf("failed to send welcome mail: %w", err)
	}

	log.Info().Str("email", event.Email).Msg("welcome mail sent")

	return nil
}

func (m *Mailer) SendBookingConfirmation(event events.BookingEvent) error {
	body, err := render(confirmationTemplate, event)
	if err != nil {
		return err
	}

	if err := m.sender.Send(event.UserEmail, subjectConfirmation, body); err != nil {
		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}

	log.Info().Str("email", event.UserEmail).Int64("bookingID", event.BookingID).Msg("confirmation mail sent")

	return nil
}

func (m *Mailer) SendBookingCancellation(event events.BookingEvent) error {
	body, err := render(cancellationTemplate, event)
	if err != nil {
		return err
	}

	if err := m.sender.Send(event.UserEmail, subjectCancellation, body); err != nil {
		return fmt.Errorf("failed to send cancellation mail: %w", err)
	}

	log.Info().Str("email", event.UserEmail).Int64("bookingID", event.BookingID).Msg("cancellation mail sent")

	return nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder

	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render mail template: %w", err)
	}

	return sb.String(), nil
}
