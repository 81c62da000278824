package mail

import "context"

// NoopMailer accepts and drops every message. It stands in for the
// real provider when no API key is configured, typically in local
// development and tests.
type NoopMailer struct{}

func (NoopMailer) Send(ctx context.Context, msg *Message) error {
	return nil
}
