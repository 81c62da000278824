package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/knobase/site-api/internal/log"
	"github.com/knobase/site-api/internal/models"
	apperrors "github.com/knobase/site-api/pkg/errors"
	"github.com/knobase/site-api/pkg/mail"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// recordingMailer captures sent messages so tests can assert on the
// notification fan-out without a provider.
type recordingMailer struct {
	mu       sync.Mutex
	messages []*mail.Message
	err      error
}

func (m *recordingMailer) Send(ctx context.Context, msg *mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return m.err
}

func (m *recordingMailer) sent() []*mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*mail.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

func validJoinRequest() *JoinWaitlistRequest {
	return &JoinWaitlistRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Role:  "developer",
	}
}

func TestWaitlistService_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	mailer := &recordingMailer{}
	service := NewWaitlistService(logger, mockRepo, mailer, "ops@example.com")

	t.Run("successful signup", func(t *testing.T) {
		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "jane@example.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				assert.Equal(t, "Jane Doe", entry.Name)
				assert.Equal(t, "jane@example.com", entry.Email)
				assert.Equal(t, "developer", entry.Role)
				assert.Equal(t, models.WaitlistStatusPending, entry.Status)
				assert.Equal(t, models.WaitlistSourceWebsite, entry.Source)
				assert.Equal(t, models.WaitlistUseCaseDefault, entry.UseCase)
				return entry, nil
			})

		result, err := service.Join(context.Background(), validJoinRequest(), nil)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Joined waitlist", result.Message)
		assert.Empty(t, result.Status)
	})

	t.Run("email is normalized before lookup and insert", func(t *testing.T) {
		req := validJoinRequest()
		req.Email = "  JANE@Example.com "

		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "jane@example.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				assert.Equal(t, "jane@example.com", entry.Email)
				return entry, nil
			})

		result, err := service.Join(context.Background(), req, nil)

		assert.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("existing email returns idempotent success", func(t *testing.T) {
		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "jane@example.com").
			Return(&models.WaitlistEntry{Email: "jane@example.com", Status: "approved"}, nil)

		result, err := service.Join(context.Background(), validJoinRequest(), nil)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Already on waitlist", result.Message)
		assert.Equal(t, "approved", result.Status)
	})

	t.Run("insert conflict folds into idempotent success", func(t *testing.T) {
		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "jane@example.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewConflictError("Already on waitlist", errors.New("duplicate key")))

		result, err := service.Join(context.Background(), validJoinRequest(), nil)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Already on waitlist", result.Message)
		assert.Equal(t, models.WaitlistStatusPending, result.Status)
	})

	t.Run("persistence failure surfaces", func(t *testing.T) {
		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "jane@example.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("Failed to join waitlist", errors.New("down")))

		result, err := service.Join(context.Background(), validJoinRequest(), nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeDatabaseError, apperrors.GetErrorType(err))
	})
}

func TestWaitlistService_Join_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: validation failures must not touch storage.
	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo, &recordingMailer{}, "ops@example.com")

	tests := []struct {
		name    string
		mutate  func(*JoinWaitlistRequest)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *JoinWaitlistRequest) { r.Name = "" },
			message: "Name, email, and role are required",
		},
		{
			name:    "missing email",
			mutate:  func(r *JoinWaitlistRequest) { r.Email = "   " },
			message: "Name, email, and role are required",
		},
		{
			name:    "missing role",
			mutate:  func(r *JoinWaitlistRequest) { r.Role = "" },
			message: "Name, email, and role are required",
		},
		{
			name:    "malformed email",
			mutate:  func(r *JoinWaitlistRequest) { r.Email = "not-an-email" },
			message: "Please enter a valid email address",
		},
		{
			name:    "email without TLD",
			mutate:  func(r *JoinWaitlistRequest) { r.Email = "jane@example" },
			message: "Please enter a valid email address",
		},
		{
			name:    "unknown role",
			mutate:  func(r *JoinWaitlistRequest) { r.Role = "wizard" },
			message: "Invalid role selected",
		},
		{
			// The required-fields check runs before the email format check.
			name: "missing name and bad email reports required fields",
			mutate: func(r *JoinWaitlistRequest) {
				r.Name = ""
				r.Email = "not-an-email"
			},
			message: "Name, email, and role are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validJoinRequest()
			tt.mutate(req)

			result, err := service.Join(context.Background(), req, nil)

			assert.Nil(t, result)
			assert.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
			assert.Equal(t, tt.message, apperrors.GetHumanReadableMessage(err))
		})
	}

	t.Run("nil request", func(t *testing.T) {
		result, err := service.Join(context.Background(), nil, nil)

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("all valid roles accepted", func(t *testing.T) {
		for _, role := range models.WaitlistRoles {
			mockRepo.EXPECT().
				FindEntryByEmail(gomock.Any(), gomock.Any()).
				Return(&models.WaitlistEntry{Status: models.WaitlistStatusPending}, nil)

			req := validJoinRequest()
			req.Role = role

			result, err := service.Join(context.Background(), req, nil)

			assert.NoError(t, err, "role %q should be accepted", role)
			assert.True(t, result.Success)
		}
	})
}

func TestWaitlistService_Join_Notifications(t *testing.T) {
	newService := func(t *testing.T, mailer mail.Mailer) (WaitlistService, *MockWaitlistRepository) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockRepo := NewMockWaitlistRepository(ctrl)
		logger := log.NewLoggerWithJSONOutput()
		return NewWaitlistService(logger, mockRepo, mailer, "ops@example.com"), mockRepo
	}

	expectInsert := func(mockRepo *MockWaitlistRepository) {
		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), gomock.Any()).
			Return(nil, nil)
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				return entry, nil
			})
	}

	t.Run("both notifications sent", func(t *testing.T) {
		mailer := &recordingMailer{}
		service, mockRepo := newService(t, mailer)
		expectInsert(mockRepo)

		result, err := service.Join(context.Background(), validJoinRequest(), nil)

		assert.NoError(t, err)
		assert.True(t, result.Success)

		messages := mailer.sent()
		assert.Len(t, messages, 2)

		recipients := []string{messages[0].To, messages[1].To}
		assert.Contains(t, recipients, "jane@example.com")
		assert.Contains(t, recipients, "ops@example.com")
	})

	t.Run("send failure does not change the response", func(t *testing.T) {
		mailer := &recordingMailer{err: errors.New("provider down")}
		service, mockRepo := newService(t, mailer)
		expectInsert(mockRepo)

		result, err := service.Join(context.Background(), validJoinRequest(), nil)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Joined waitlist", result.Message)
	})

	t.Run("nil mailer skips notifications", func(t *testing.T) {
		service, mockRepo := newService(t, nil)
		expectInsert(mockRepo)

		result, err := service.Join(context.Background(), validJoinRequest(), nil)

		assert.NoError(t, err)
		assert.True(t, result.Success)
	})
}

func TestWaitlistService_Join_EntryMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo, &recordingMailer{}, "ops@example.com")

	t.Run("records transport metadata and signup page", func(t *testing.T) {
		req := validJoinRequest()
		req.Organization = "Acme"
		req.UseCase = "Internal tooling"
		req.Page = "pricing"

		meta := &RequestMeta{
			UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Safari/604.1",
			IPAddress: "203.0.113.9",
		}

		var captured *models.WaitlistEntry
		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "jane@example.com").
			Return(nil, nil)
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				captured = entry
				return entry, nil
			})

		_, err := service.Join(context.Background(), req, meta)
		assert.NoError(t, err)

		assert.Equal(t, "Acme", captured.Organization)
		assert.Equal(t, "Internal tooling", captured.UseCase)
		assert.Equal(t, meta.UserAgent, captured.UserAgent)
		assert.Equal(t, "203.0.113.9", captured.IPAddress)
		assert.Equal(t, DeviceMobile, captured.DeviceType)
		assert.Equal(t, "Safari", captured.Browser)
		assert.Equal(t, "iOS", captured.OS)

		var metadata map[string]string
		assert.NoError(t, json.Unmarshal(captured.Metadata, &metadata))
		assert.Equal(t, "pricing", metadata["signup_page"])
	})

	t.Run("defaults applied when optional fields are empty", func(t *testing.T) {
		var captured *models.WaitlistEntry
		mockRepo.EXPECT().
			FindEntryByEmail(gomock.Any(), "jane@example.com").
			Return(nil, nil)
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				captured = entry
				return entry, nil
			})

		_, err := service.Join(context.Background(), validJoinRequest(), nil)
		assert.NoError(t, err)

		assert.Equal(t, models.WaitlistUseCaseDefault, captured.UseCase)
		assert.Equal(t, DeviceDesktop, captured.DeviceType)
		assert.Equal(t, "Other", captured.Browser)
		assert.Equal(t, "Other", captured.OS)

		var metadata map[string]string
		assert.NoError(t, json.Unmarshal(captured.Metadata, &metadata))
		assert.Equal(t, "landing", metadata["signup_page"])
	})
}
