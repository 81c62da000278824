package domain

import (
	"github.com/knobase/site-api/config"
	"github.com/knobase/site-api/domain/catalog"
	"github.com/knobase/site-api/domain/monitoring"
	"github.com/knobase/site-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	catalogRepository := catalog.NewStaticRepository()

	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.DB, appConfig.Logger, appConfig.Mailer, appConfig.NotifyAddress))
	appConfig.RouterService.MountController(catalog.NewTemplateController(appConfig.Logger, catalogRepository))
	appConfig.RouterService.MountController(catalog.NewCategoryController(appConfig.Logger, catalogRepository))
}
