package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/knobase/site-api/config"
	"github.com/knobase/site-api/config/router"
	"github.com/knobase/site-api/domain"
	"github.com/knobase/site-api/internal/log"
	"github.com/knobase/site-api/internal/models"
	"github.com/knobase/site-api/pkg/mail"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// capturingMailer records outbound mail so the suite can assert on
// notifications without a provider.
type capturingMailer struct {
	mu       sync.Mutex
	messages []*mail.Message
}

func (m *capturingMailer) Send(ctx context.Context, msg *mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *capturingMailer) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}

func (m *capturingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

type WaitlistAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	logger    *log.Logger
	mailer    *capturingMailer
	appConfig *config.ApplicationConfig
}

func (suite *WaitlistAPITestSuite) SetupSuite() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.WaitlistEntry{})
	suite.Require().NoError(err)

	suite.logger = log.NewLoggerWithJSONOutput()
	suite.mailer = &capturingMailer{}

	suite.appConfig = &config.ApplicationConfig{
		DB:            suite.db,
		Logger:        suite.logger,
		Mailer:        suite.mailer,
		NotifyAddress: "ops@example.com",
	}

	suite.appConfig.RouterService = router.CreateRouterService(suite.logger, nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	domain.SetupCoreDomain(suite.appConfig)

	suite.server = httptest.NewServer(suite.appConfig.RouterService.GetEngine())
	suite.baseURL = suite.server.URL
}

func (suite *WaitlistAPITestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		sqlDB.Close()
	}
}

func (suite *WaitlistAPITestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM waitlist_entries")
	suite.mailer.reset()
}

func (suite *WaitlistAPITestSuite) postWaitlist(body map[string]string) (*http.Response, map[string]interface{}) {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)

	resp, err := http.Post(suite.baseURL+"/v1/waitlist", "application/json", bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	return resp, response
}

func (suite *WaitlistAPITestSuite) TestHealthCheck() {
	resp, err := http.Get(suite.baseURL + "/health")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	suite.Equal(float64(1), response["database"])
	suite.Contains(response, "uptime")
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlist() {
	resp, response := suite.postWaitlist(map[string]string{
		"name":  "Jane Doe",
		"email": "JANE@Example.com",
		"role":  "developer",
		"page":  "pricing",
	})

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(true, response["success"])
	suite.Equal("Joined waitlist", response["message"])

	var entry models.WaitlistEntry
	suite.Require().NoError(suite.db.Where("email = ?", "jane@example.com").First(&entry).Error)
	suite.Equal("Jane Doe", entry.Name)
	suite.Equal("pending", entry.Status)
	suite.Equal("website", entry.Source)
	suite.Equal("N/A", entry.UseCase)

	var metadata map[string]string
	suite.Require().NoError(json.Unmarshal(entry.Metadata, &metadata))
	suite.Equal("pricing", metadata["signup_page"])

	suite.Equal(2, suite.mailer.count())
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistTwiceIsIdempotent() {
	body := map[string]string{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"role":  "developer",
	}

	resp, _ := suite.postWaitlist(body)
	suite.Equal(http.StatusOK, resp.StatusCode)

	suite.mailer.reset()

	resp, response := suite.postWaitlist(body)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal(true, response["success"])
	suite.Equal("Already on waitlist", response["message"])
	suite.Equal("pending", response["status"])

	// The duplicate path sends nothing.
	suite.Equal(0, suite.mailer.count())

	var count int64
	suite.db.Model(&models.WaitlistEntry{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistValidationErrors() {
	tests := []struct {
		name    string
		body    map[string]string
		message string
	}{
		{
			name:    "missing required fields",
			body:    map[string]string{"email": "jane@example.com"},
			message: "Name, email, and role are required",
		},
		{
			name: "malformed email",
			body: map[string]string{
				"name":  "Jane Doe",
				"email": "not-an-email",
				"role":  "developer",
			},
			message: "Please enter a valid email address",
		},
		{
			name: "unknown role",
			body: map[string]string{
				"name":  "Jane Doe",
				"email": "jane@example.com",
				"role":  "wizard",
			},
			message: "Invalid role selected",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			resp, response := suite.postWaitlist(tt.body)

			suite.Equal(http.StatusBadRequest, resp.StatusCode)
			suite.Equal(tt.message, response["error"])

			var count int64
			suite.db.Model(&models.WaitlistEntry{}).Count(&count)
			suite.Equal(int64(0), count)
		})
	}
}

func (suite *WaitlistAPITestSuite) TestJoinWaitlistMalformedJSON() {
	resp, err := http.Post(suite.baseURL+"/v1/waitlist", "application/json", bytes.NewBufferString("{not json"))
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	var response map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	suite.Equal("Invalid request body", response["error"])
}

func TestWaitlistAPITestSuite(t *testing.T) {
	suite.Run(t, new(WaitlistAPITestSuite))
}
