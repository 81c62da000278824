package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/knobase/site-api/internal/log"
	apperrors "github.com/knobase/site-api/pkg/errors"
)

// CatalogService exposes the read side of the template marketplace.
type CatalogService interface {
	ListTemplates(ctx context.Context, filter ListFilter) ([]Template, error)
	GetTemplate(ctx context.Context, slug string) (*Template, error)
	ListReviews(ctx context.Context, slug string) ([]Review, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

type catalogService struct {
	logger     *log.Logger
	repository TemplateRepository
}

func NewCatalogService(logger *log.Logger, repository TemplateRepository) CatalogService {
	return &catalogService{
		logger:     logger,
		repository: repository,
	}
}

func (s *catalogService) ListTemplates(ctx context.Context, filter ListFilter) ([]Template, error) {
	templates, err := s.repository.ListTemplates(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list templates", slog.String("error", err.Error()))
		return nil, apperrors.NewDatabaseError("Failed to list templates", err)
	}

	if filter.Category != "" {
		templates = filterByCategory(templates, filter.Category)
	}
	if filter.Search != "" {
		templates = filterBySearch(templates, filter.Search)
	}

	sortTemplates(templates, filter.Sort)

	if filter.Limit > 0 && filter.Limit < len(templates) {
		templates = templates[:filter.Limit]
	}

	return templates, nil
}

func (s *catalogService) GetTemplate(ctx context.Context, slug string) (*Template, error) {
	template, err := s.repository.GetTemplate(ctx, slug)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch template",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		return nil, apperrors.NewDatabaseError("Failed to fetch template", err)
	}
	if template == nil {
		return nil, apperrors.NewNotFoundError("Template not found", nil)
	}
	return template, nil
}

// ListReviews returns an empty slice for templates with no reviews,
// including slugs that do not exist. The storefront renders both the
// same way.
func (s *catalogService) ListReviews(ctx context.Context, slug string) ([]Review, error) {
	reviews, err := s.repository.ListReviews(ctx, slug)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list reviews",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		return nil, apperrors.NewDatabaseError("Failed to list reviews", err)
	}
	return reviews, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.repository.ListCategories(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list categories", slog.String("error", err.Error()))
		return nil, apperrors.NewDatabaseError("Failed to list categories", err)
	}
	return categories, nil
}

func filterByCategory(templates []Template, category string) []Template {
	out := templates[:0]
	for _, t := range templates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// filterBySearch matches the query case-insensitively against the
// template name and short description, and as a substring of any tag.
func filterBySearch(templates []Template, query string) []Template {
	q := strings.ToLower(query)
	out := templates[:0]
	for _, t := range templates {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.ShortDescription), q) ||
			tagMatches(t.Tags, q) {
			out = append(out, t)
		}
	}
	return out
}

func tagMatches(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}

func sortTemplates(templates []Template, order string) {
	switch order {
	case SortNewest:
		sort.SliceStable(templates, func(i, j int) bool {
			return templates[i].CreatedAt > templates[j].CreatedAt
		})
	case SortPriceLow:
		sort.SliceStable(templates, func(i, j int) bool {
			return templates[i].Price < templates[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(templates, func(i, j int) bool {
			return templates[i].Price > templates[j].Price
		})
	case SortRating:
		sort.SliceStable(templates, func(i, j int) bool {
			return templates[i].Rating > templates[j].Rating
		})
	default:
		// SortPopular and anything unrecognized.
		sort.SliceStable(templates, func(i, j int) bool {
			return templates[i].ReviewCount > templates[j].ReviewCount
		})
	}
}
