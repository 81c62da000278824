package waitlist

import (
	"strings"
	"time"

	"github.com/knobase/site-api/config/router"
	"github.com/knobase/site-api/internal/log"
	apperrors "github.com/knobase/site-api/pkg/errors"
	"github.com/knobase/site-api/pkg/mail"
	"github.com/knobase/site-api/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
	mailer mail.Mailer,
	notifyAddress string,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository, mailer, notifyAddress)

			signupLimiter := createSignupRateLimiter()

			rs.AddPostHandler(c, signupLimiter, "", joinWaitlistHandler(service))
		},
	)
}

func createSignupRateLimiter() ratelimit.RateLimiter {
	// A marketing form submits once per visitor; 30/min per IP leaves
	// headroom for shared NATs while blunting scripted signups.
	const signupRequestsPerMinute = 30

	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Requests: signupRequestsPerMinute,
		Window:   time.Minute,
	})
}

func joinWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req JoinWaitlistRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind waitlist request", "error", err)

			var details any
			if fieldErrors := apperrors.FormatValidationErrors(err, &req); len(fieldErrors) > 0 {
				details = fieldErrors
			}
			return router.BadRequestResult("Invalid request body", details)
		}

		meta := &RequestMeta{
			UserAgent: ctx.Request.UserAgent(),
			IPAddress: requestIP(ctx),
		}

		result, err := service.Join(ctx.Request.Context(), &req, meta)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
			)
		}

		return router.OKResult(result)
	}
}

// requestIP extracts the client address the way the site has always
// recorded it: first X-Forwarded-For value, then X-Real-IP, best effort.
func requestIP(ctx *router.RequestContext) string {
	if forwarded := ctx.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return strings.TrimSpace(ctx.GetHeader("X-Real-IP"))
}
