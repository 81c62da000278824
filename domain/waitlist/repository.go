package waitlist

import (
	"context"
	"errors"

	"github.com/knobase/site-api/internal/models"
	apperrors "github.com/knobase/site-api/pkg/errors"
	"gorm.io/gorm"
)

type WaitlistRepository interface {
	// CreateEntry persists a new waitlist entry. A unique index on email
	// backs the at-most-once enrollment guarantee; a duplicate insert
	// comes back as a conflict error.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	// FindEntryByEmail looks up an entry by its normalized email.
	// Returns (nil, nil) when no entry exists.
	FindEntryByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("Already on waitlist", err)
		}
		return nil, apperrors.NewDatabaseError("Failed to join waitlist", err)
	}

	return entry, nil
}

func (wr *waitlistRepository) FindEntryByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	if err := wr.db.WithContext(ctx).Where("email = ?", email).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("Failed to join waitlist", err)
	}

	return &entry, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
