package waitlist

import (
	"github.com/knobase/site-api/config/router"
	"github.com/knobase/site-api/internal/log"
	"github.com/knobase/site-api/pkg/mail"
	"gorm.io/gorm"
)

type WaitlistServiceFactory interface {
	CreateService() WaitlistService
	CreateController() *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	db            *gorm.DB
	logger        *log.Logger
	mailer        mail.Mailer
	notifyAddress string
}

func NewWaitlistServiceFactory(db *gorm.DB, logger *log.Logger, mailer mail.Mailer, notifyAddress string) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		db:            db,
		logger:        logger,
		mailer:        mailer,
		notifyAddress: notifyAddress,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateService() WaitlistService {
	repository := NewWaitlistRepository(f.db)
	return NewWaitlistService(f.logger, repository, f.mailer, f.notifyAddress)
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.db, f.logger, f.mailer, f.notifyAddress)
}
