package catalog

import (
	"context"
)

// TemplateRepository is the read-only source of marketplace records.
// The in-memory implementation stands in for the marketplace service
// until its public API ships; the interface keeps the swap contained.
type TemplateRepository interface {
	ListTemplates(ctx context.Context) ([]Template, error)
	// GetTemplate returns (nil, nil) when no template has the slug.
	GetTemplate(ctx context.Context, slug string) (*Template, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListReviews(ctx context.Context, slug string) ([]Review, error)
}

type staticRepository struct {
	templates  []Template
	categories []Category
	reviews    map[string][]Review
}

// NewStaticRepository serves the built-in seed catalog.
func NewStaticRepository() TemplateRepository {
	return &staticRepository{
		templates:  seedTemplates,
		categories: seedCategories,
		reviews:    seedReviews,
	}
}

func (r *staticRepository) ListTemplates(ctx context.Context) ([]Template, error) {
	// Copy so callers can filter and sort without touching the seed.
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out, nil
}

func (r *staticRepository) GetTemplate(ctx context.Context, slug string) (*Template, error) {
	for i := range r.templates {
		if r.templates[i].Slug == slug {
			t := r.templates[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *staticRepository) ListCategories(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *staticRepository) ListReviews(ctx context.Context, slug string) ([]Review, error) {
	reviews := r.reviews[slug]
	out := make([]Review, len(reviews))
	copy(out, reviews)
	return out, nil
}
