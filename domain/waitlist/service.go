package waitlist

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/knobase/site-api/internal/log"
	"github.com/knobase/site-api/internal/models"
	apperrors "github.com/knobase/site-api/pkg/errors"
	"github.com/knobase/site-api/pkg/mail"
	"gorm.io/datatypes"
)

// Matches the acceptance set published to the waitlist form: something,
// an @, something, a dot, something, no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const defaultSignupPage = "landing"

type WaitlistService interface {
	// Join runs the intake pipeline for one signup: validate, dedupe by
	// normalized email, persist, then notify best-effort. The returned
	// result is the wire shape for the form; errors carry their HTTP
	// classification.
	Join(ctx context.Context, req *JoinWaitlistRequest, meta *RequestMeta) (*JoinWaitlistResult, error)
}

type waitlistService struct {
	logger        *log.Logger
	repository    WaitlistRepository
	mailer        mail.Mailer
	notifyAddress string
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, mailer mail.Mailer, notifyAddress string) WaitlistService {
	return &waitlistService{
		logger:        logger,
		repository:    repository,
		mailer:        mailer,
		notifyAddress: notifyAddress,
	}
}

func (s *waitlistService) Join(ctx context.Context, req *JoinWaitlistRequest, meta *RequestMeta) (*JoinWaitlistResult, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Join received empty request")
		return nil, apperrors.NewInvalidRequestError("Name, email, and role are required", nil)
	}
	if meta == nil {
		meta = &RequestMeta{}
	}

	if err := validateJoinRequest(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repository.FindEntryByEmail(ctx, email)
	if err != nil {
		logger.Error("Waitlist lookup failed", "error", err)
		return nil, err
	}
	if existing != nil {
		return &JoinWaitlistResult{
			Success: true,
			Message: "Already on waitlist",
			Status:  existing.Status,
		}, nil
	}

	entry, err := buildEntry(req, meta, email)
	if err != nil {
		logger.Error("Failed to assemble waitlist entry", "error", err)
		return nil, apperrors.NewInternalServerError("Failed to join waitlist", err)
	}

	created, err := s.repository.CreateEntry(ctx, entry)
	if err != nil {
		// Two near-simultaneous submissions can both pass the lookup; the
		// unique email index turns the loser into this conflict, which is
		// the same idempotent success the lookup path would have produced.
		if apperrors.GetErrorType(err) == apperrors.ErrorTypeConflict {
			return &JoinWaitlistResult{
				Success: true,
				Message: "Already on waitlist",
				Status:  models.WaitlistStatusPending,
			}, nil
		}
		logger.Error("Waitlist insert failed", "error", err)
		return nil, err
	}

	s.sendNotifications(ctx, logger, created)

	return &JoinWaitlistResult{Success: true, Message: "Joined waitlist"}, nil
}

func validateJoinRequest(req *JoinWaitlistRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	role := strings.TrimSpace(req.Role)

	if name == "" || email == "" || role == "" {
		return apperrors.NewInvalidRequestError("Name, email, and role are required", nil)
	}

	if !emailPattern.MatchString(email) {
		return apperrors.NewInvalidRequestError("Please enter a valid email address", nil)
	}

	for _, valid := range models.WaitlistRoles {
		if role == valid {
			return nil
		}
	}

	return apperrors.NewInvalidRequestError("Invalid role selected", nil)
}

func buildEntry(req *JoinWaitlistRequest, meta *RequestMeta, email string) (*models.WaitlistEntry, error) {
	device, browser, osName := ClassifyUserAgent(meta.UserAgent)

	useCase := strings.TrimSpace(req.UseCase)
	if useCase == "" {
		useCase = models.WaitlistUseCaseDefault
	}

	page := strings.TrimSpace(req.Page)
	if page == "" {
		page = defaultSignupPage
	}

	metadata, err := json.Marshal(map[string]string{"signup_page": page})
	if err != nil {
		return nil, err
	}

	return &models.WaitlistEntry{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Organization: strings.TrimSpace(req.Organization),
		Role:         strings.TrimSpace(req.Role),
		UseCase:      useCase,
		Status:       models.WaitlistStatusPending,
		Source:       models.WaitlistSourceWebsite,
		UserAgent:    meta.UserAgent,
		IPAddress:    meta.IPAddress,
		DeviceType:   device,
		Browser:      browser,
		OS:           osName,
		Metadata:     datatypes.JSON(metadata),
	}, nil
}

// sendNotifications fires the submitter confirmation and the operator
// alert concurrently and waits for both. Failures are logged per message
// and never surfaced: the recorded signup is the only durability
// guarantee this flow makes.
func (s *waitlistService) sendNotifications(ctx context.Context, logger *log.Logger, entry *models.WaitlistEntry) {
	if s.mailer == nil {
		return
	}

	messages := []*mail.Message{
		confirmationMessage(entry),
		operatorMessage(s.notifyAddress, entry),
	}

	var wg sync.WaitGroup
	for _, msg := range messages {
		wg.Add(1)
		go func(msg *mail.Message) {
			defer wg.Done()
			if err := s.mailer.Send(ctx, msg); err != nil {
				logger.Error("Waitlist notification send failed", "to", msg.To, "error", err)
			}
		}(msg)
	}
	wg.Wait()
}

func confirmationMessage(entry *models.WaitlistEntry) *mail.Message {
	return &mail.Message{
		To:      entry.Email,
		Subject: "You're on the Knobase waitlist",
		HTML: fmt.Sprintf(`
			<h1>Welcome to Knobase, %s!</h1>
			<p>Thanks for joining our waitlist.</p>
			<p>We'll review your application and email you when Knobase is ready for you.</p>
			<p>— The Knobase Team</p>
		`, html.EscapeString(entry.Name)),
	}
}

func operatorMessage(to string, entry *models.WaitlistEntry) *mail.Message {
	organization := entry.Organization
	if organization == "" {
		organization = "N/A"
	}

	return &mail.Message{
		To:      to,
		Subject: "New Knobase waitlist signup",
		HTML: fmt.Sprintf(`
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Role:</strong> %s</p>
			<p><strong>Organization:</strong> %s</p>
		`, html.EscapeString(entry.Name), html.EscapeString(entry.Email), html.EscapeString(entry.Role), html.EscapeString(organization)),
	}
}
