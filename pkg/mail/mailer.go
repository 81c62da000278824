package mail

import (
	"context"
	"fmt"

	"github.com/knobase/site-api/pkg/circuitbreaker"
	"github.com/resend/resend-go/v2"
)

// Message is a single-recipient transactional email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends transactional email. Implementations must be safe for
// concurrent use; the waitlist flow issues sends from multiple goroutines.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// ResendMailer delivers through the Resend HTTP API. A circuit breaker
// guards the provider so a dead upstream fails fast instead of holding
// request goroutines for the full HTTP timeout.
type ResendMailer struct {
	client  *resend.Client
	from    string
	breaker circuitbreaker.CircuitBreaker
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client:  resend.NewClient(apiKey),
		from:    from,
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig()),
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg *Message) error {
	if msg == nil {
		return fmt.Errorf("mail: message is nil")
	}

	return m.breaker.Call(func() error {
		params := &resend.SendEmailRequest{
			From:    m.from,
			To:      []string{msg.To},
			Subject: msg.Subject,
			Html:    msg.HTML,
		}

		if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
			return fmt.Errorf("mail: send to %s: %w", msg.To, err)
		}
		return nil
	})
}
