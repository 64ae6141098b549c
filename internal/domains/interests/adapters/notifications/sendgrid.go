package notifications

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/havendogs/api-server/internal/domains/interests/domain"
	"github.com/havendogs/api-server/internal/domains/interests/ports"
)

const defaultFromEmail = "noreply@havendogs.com"

var _ ports.Notifier = (*SendGridNotifier)(nil)

// SendGridNotifier delivers adoption status emails through SendGrid.
type SendGridNotifier struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

// NewSendGridNotifier builds a notifier for the given API key. An empty
// fromEmail falls back to the shelter's no-reply address.
func NewSendGridNotifier(apiKey, fromEmail string) *SendGridNotifier {
	if fromEmail == "" {
		fromEmail = defaultFromEmail
	}
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  "HavenDogs",
		fromEmail: fromEmail,
	}
}

// SendStatusUpdate emails the applicant about the decision on their submission.
func (n *SendGridNotifier) SendStatusUpdate(ctx context.Context, notification ports.StatusNotification) error {
	subject, html := composeStatusEmail(notification)
	message := mail.NewSingleEmail(
		mail.NewEmail(n.fromName, n.fromEmail),
		subject,
		mail.NewEmail(notification.Name, notification.To),
		"",
		html,
	)
	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid rejected status email: %d %s", response.StatusCode, response.Body)
	}
	return nil
}

func composeStatusEmail(notification ports.StatusNotification) (subject, html string) {
	if notification.Status == string(domain.StatusApproved) {
		subject = fmt.Sprintf("Congratulations! Your adoption request for %s has been approved", notification.PetName)
		html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #4CAF50;">Great News, %s!</h2>
<p>We're excited to inform you that your adoption request for <strong>%s</strong> has been <strong>approved</strong>!</p>
<p>The pet owner will be in touch with you soon to discuss the next steps in the adoption process.</p>
<p>Thank you for choosing to adopt through HavenDogs!</p>
<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
<p style="color: #666; font-size: 12px;">This is an automated message from HavenDogs.</p>
</div>`, notification.Name, notification.PetName)
		return subject, html
	}
	subject = fmt.Sprintf("Update on your adoption request for %s", notification.PetName)
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #f44336;">Update on Your Adoption Request</h2>
<p>Hello %s,</p>
<p>We wanted to inform you that your adoption request for <strong>%s</strong> has been <strong>rejected</strong> at this time.</p>
<p>We encourage you to continue your search for the perfect pet companion. There are many other wonderful pets available for adoption.</p>
<p>Thank you for your interest in adopting through HavenDogs.</p>
<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
<p style="color: #666; font-size: 12px;">This is an automated message from HavenDogs.</p>
</div>`, notification.Name, notification.PetName)
	return subject, html
}
