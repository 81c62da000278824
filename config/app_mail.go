package config

import (
	"os"

	"github.com/knobase/site-api/internal/log"
	"github.com/knobase/site-api/pkg/mail"
	"github.com/knobase/site-api/pkg/utils"
)

// Default addresses match the marketing site's sending identity. Both
// can be overridden for staging environments.
const (
	defaultFromAddress   = "claw@mail.knobase.ai"
	defaultNotifyAddress = "chris@metalympics.org"
)

type MailConfig struct {
	APIKey        string
	FromAddress   string
	NotifyAddress string
}

func NewMailConfig() *MailConfig {
	return &MailConfig{
		APIKey:        os.Getenv("RESEND_API_KEY"),
		FromAddress:   utils.GetEnvOrDefault("WAITLIST_FROM_ADDRESS", defaultFromAddress),
		NotifyAddress: utils.GetEnvOrDefault("WAITLIST_NOTIFY_ADDRESS", defaultNotifyAddress),
	}
}

func (mc *MailConfig) IsConfigured() bool {
	return mc.APIKey != ""
}

// NewMailer returns the Resend-backed mailer, or a no-op when no API
// key is present so local runs do not require provider credentials.
func (mc *MailConfig) NewMailer(logger *log.Logger) mail.Mailer {
	if !mc.IsConfigured() {
		logger.Warn("RESEND_API_KEY not set; outbound email disabled")
		return mail.NoopMailer{}
	}

	logger.Info("Mail provider configured", "from", mc.FromAddress)

	return mail.NewResendMailer(mc.APIKey, mc.FromAddress)
}
