// Package mail implements transactional email delivery over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"gopkg.in/gomail.v2"

	"sharecare/config"
	"sharecare/internal/domain/service"
)

// Bodies are rendered through html/template so user-supplied names and item
// titles are escaped before they reach the message.
var (
	welcomeTmpl = template.Must(template.New("welcome").Parse(`<h2>Welcome to ShareCare, {{.Name}}!</h2>
<p>Your account is ready. Start sharing surplus food and clothes with your community today.</p>`))

	loginTmpl = template.Must(template.New("login").Parse(`<h2>Hi {{.Name}},</h2>
<p>You just signed in to ShareCare. If this wasn't you, please secure your account.</p>`))

	donationTmpl = template.Must(template.New("donation").Parse(`<h2>Thank you, {{.Name}}!</h2>
<p>Your donation "{{.ItemName}}" is now live. We'll let you know as soon as someone requests it.</p>`))

	requestTmpl = template.Must(template.New("request").Parse(`<h2>Hi {{.Name}},</h2>
<p>{{.RequesterName}} has requested your item "{{.ItemName}}". Open the app to approve or decline the request.</p>`))

	confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h2>Good news, {{.Name}}!</h2>
<p>Your request for "{{.ItemName}}" was approved.</p>
<p>Tracking ID: <strong>{{.TrackingID}}</strong></p>`))

	trackingTmpl = template.Must(template.New("tracking").Parse(`<h2>Hi {{.Name}},</h2>
<p>The status of "{{.ItemName}}" (tracking {{.TrackingID}}) changed to <strong>{{.Status}}</strong>.</p>`))

	deletionTmpl = template.Must(template.New("deletion").Parse(`<h2>Goodbye, {{.Name}}</h2>
<p>Your ShareCare account and its data have been removed. Thanks for sharing with us.</p>`))
)

// mailData carries every field the body templates can reference.
type mailData struct {
	Name          string
	RequesterName string
	ItemName      string
	TrackingID    string
	Status        string
}

// smtpService implements the MailService interface with gomail. When SMTP is
// disabled in config every send becomes a logged no-op, which keeps local
// development free of a mail server.
type smtpService struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
	logger  *slog.Logger
}

// NewSMTPService is the constructor for smtpService.
func NewSMTPService(cfg *config.Config, logger *slog.Logger) service.MailService {
	svc := &smtpService{
		logger: logger,
	}

	if cfg.SMTP != nil {
		svc.from = cfg.SMTP.From
		svc.enabled = cfg.SMTP.Enabled
		if svc.enabled {
			svc.dialer = gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		}
	}

	return svc
}

// SendWelcome greets a newly registered user.
func (s *smtpService) SendWelcome(ctx context.Context, to, name string) error {
	return s.send(ctx, to, "Welcome to ShareCare", welcomeTmpl, mailData{Name: name})
}

// SendLoginNotification notifies a user about a fresh sign-in.
func (s *smtpService) SendLoginNotification(ctx context.Context, to, name string) error {
	return s.send(ctx, to, "New sign-in to your ShareCare account", loginTmpl, mailData{Name: name})
}

// SendDonationConfirmation confirms a newly posted item to its donor.
func (s *smtpService) SendDonationConfirmation(ctx context.Context, to, name, itemName string) error {
	return s.send(ctx, to, "Your donation is live", donationTmpl, mailData{Name: name, ItemName: itemName})
}

// SendReservationRequest tells a donor someone requested their item.
func (s *smtpService) SendReservationRequest(ctx context.Context, to, donorName, requesterName, itemName string) error {
	return s.send(ctx, to, "New request for your donation", requestTmpl, mailData{
		Name:          donorName,
		RequesterName: requesterName,
		ItemName:      itemName,
	})
}

// SendReservationConfirmation tells a requester their request was approved.
func (s *smtpService) SendReservationConfirmation(ctx context.Context, to, requesterName, itemName, trackingID string) error {
	return s.send(ctx, to, "Your request was approved", confirmationTmpl, mailData{
		Name:       requesterName,
		ItemName:   itemName,
		TrackingID: trackingID,
	})
}

// SendTrackingUpdate tells both parties the pickup status moved.
func (s *smtpService) SendTrackingUpdate(ctx context.Context, to, name, itemName, trackingID, status string) error {
	return s.send(ctx, to, "Pickup status update", trackingTmpl, mailData{
		Name:       name,
		ItemName:   itemName,
		TrackingID: trackingID,
		Status:     status,
	})
}

// SendAccountDeletion confirms account removal.
func (s *smtpService) SendAccountDeletion(ctx context.Context, to, name string) error {
	return s.send(ctx, to, "Your ShareCare account was deleted", deletionTmpl, mailData{Name: name})
}

func (s *smtpService) send(ctx context.Context, to, subject string, tmpl *template.Template, data mailData) error {
	if to == "" {
		return nil
	}

	if !s.enabled {
		s.logger.DebugContext(ctx, "smtp disabled, skipping email",
			slog.String("to", to),
			slog.String("subject", subject))

		return nil
	}

	body, err := renderBody(tmpl, data)
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}

func renderBody(tmpl *template.Template, data mailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", tmpl.Name(), err)
	}

	return buf.String(), nil
}
