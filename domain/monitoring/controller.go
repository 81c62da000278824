package monitoring

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knobase/site-api/config/router"
	"github.com/knobase/site-api/internal/log"
	"github.com/knobase/site-api/pkg/ratelimit"
	"gorm.io/gorm"
)

type Cache interface {
	Ping(ctx context.Context) error
}

// HealthStatus reports dependency health as 1/0 flags plus process
// uptime in seconds.
type HealthStatus struct {
	Database int `json:"database"`
	Cache    int `json:"cache"`
	Uptime   int `json:"uptime"`
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Cache
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			monitoringRateLimiter := createMonitoringRateLimiter()

			routerService.AddGetHandler(controller, monitoringRateLimiter, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.root(c)
			})

			routerService.AddGetHandler(controller, monitoringRateLimiter, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func createMonitoringRateLimiter() ratelimit.RateLimiter {
	// Health probes come from a handful of monitors, not visitors.
	const monitoringRequestsPerMinute = 10

	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Requests: monitoringRequestsPerMinute,
		Window:   time.Minute,
	})
}

func (ctrl *MonitoringController) root(c *router.RequestContext) *router.ServiceResult {
	return router.OKResult(gin.H{
		"service": "knobase-site-api",
		"status":  "operational",
	})
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)

	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	ctx := c.Request.Context()

	if ctrl.checkDatabase(ctx) {
		status.Database = 1
	} else {
		logger.Error("Database health check failed")
	}

	if ctrl.cache != nil {
		if ctrl.cache.Ping(ctx) == nil {
			status.Cache = 1
		} else {
			logger.Error("Cache health check failed")
		}
	}

	return router.OKResult(status)
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.PingContext(ctx) == nil
}
