package catalog

import (
	"context"
	"testing"

	"github.com/knobase/site-api/internal/log"
	apperrors "github.com/knobase/site-api/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestService() CatalogService {
	return NewCatalogService(log.NewLoggerWithJSONOutput(), NewStaticRepository())
}

func templateSlugs(templates []Template) []string {
	slugs := make([]string, len(templates))
	for i, t := range templates {
		slugs[i] = t.Slug
	}
	return slugs
}

func TestCatalogService_ListTemplates(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	t.Run("no filter returns the full catalog sorted by popularity", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{})

		assert.NoError(t, err)
		assert.Len(t, templates, 9)

		for i := 1; i < len(templates); i++ {
			assert.GreaterOrEqual(t, templates[i-1].ReviewCount, templates[i].ReviewCount)
		}
		assert.Equal(t, "meeting-notes-automator", templates[0].Slug)
	})

	t.Run("category filter", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Category: "marketing"})

		assert.NoError(t, err)
		assert.Len(t, templates, 2)
		for _, tmpl := range templates {
			assert.Equal(t, "marketing", tmpl.Category)
		}
	})

	t.Run("unknown category returns empty", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Category: "gaming"})

		assert.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Search: "SEO content"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"seo-content-agent"}, templateSlugs(templates))
	})

	t.Run("search matches short description", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Search: "clause extraction"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"legal-contract-reviewer"}, templateSlugs(templates))
	})

	t.Run("search matches tag substrings", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Search: "recruit"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"hiring-pipeline"}, templateSlugs(templates))
	})

	t.Run("search with no hits returns empty", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Search: "blockchain"})

		assert.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("sort newest", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Sort: SortNewest})

		assert.NoError(t, err)
		assert.Equal(t, "hiring-pipeline", templates[0].Slug)
		for i := 1; i < len(templates); i++ {
			assert.GreaterOrEqual(t, templates[i-1].CreatedAt, templates[i].CreatedAt)
		}
	})

	t.Run("sort price ascending", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Sort: SortPriceLow})

		assert.NoError(t, err)
		assert.Equal(t, "meeting-notes-automator", templates[0].Slug)
		for i := 1; i < len(templates); i++ {
			assert.LessOrEqual(t, templates[i-1].Price, templates[i].Price)
		}
	})

	t.Run("sort price descending", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Sort: SortPriceHigh})

		assert.NoError(t, err)
		assert.Equal(t, "legal-contract-reviewer", templates[0].Slug)
	})

	t.Run("sort rating", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Sort: SortRating})

		assert.NoError(t, err)
		for i := 1; i < len(templates); i++ {
			assert.GreaterOrEqual(t, templates[i-1].Rating, templates[i].Rating)
		}
	})

	t.Run("unrecognized sort falls back to popularity", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Sort: "alphabetical"})

		assert.NoError(t, err)
		assert.Equal(t, "meeting-notes-automator", templates[0].Slug)
	})

	t.Run("limit truncates", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Limit: 3})

		assert.NoError(t, err)
		assert.Len(t, templates, 3)
	})

	t.Run("limit beyond catalog size is a no-op", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{Limit: 50})

		assert.NoError(t, err)
		assert.Len(t, templates, 9)
	})

	t.Run("filters compose", func(t *testing.T) {
		templates, err := service.ListTemplates(ctx, ListFilter{
			Category: "marketing",
			Search:   "social",
			Limit:    1,
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"social-media-manager"}, templateSlugs(templates))
	})
}

func TestCatalogService_GetTemplate(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	t.Run("known slug", func(t *testing.T) {
		template, err := service.GetTemplate(ctx, "seo-content-agent")

		assert.NoError(t, err)
		assert.Equal(t, "SEO Content Agent Team", template.Name)
		assert.Equal(t, "Sarah Chen", template.Creator.Name)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		template, err := service.GetTemplate(ctx, "does-not-exist")

		assert.Nil(t, template)
		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetErrorType(err))
		assert.Equal(t, "Template not found", apperrors.GetHumanReadableMessage(err))
	})
}

func TestCatalogService_ListReviews(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	t.Run("reviewed template", func(t *testing.T) {
		reviews, err := service.ListReviews(ctx, "seo-content-agent")

		assert.NoError(t, err)
		assert.Len(t, reviews, 4)
		assert.Equal(t, "Lisa M.", reviews[0].Author)
	})

	t.Run("template without reviews returns empty", func(t *testing.T) {
		reviews, err := service.ListReviews(ctx, "hiring-pipeline")

		assert.NoError(t, err)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
	})

	t.Run("unknown slug returns empty", func(t *testing.T) {
		reviews, err := service.ListReviews(ctx, "does-not-exist")

		assert.NoError(t, err)
		assert.Empty(t, reviews)
	})
}

func TestCatalogService_ListCategories(t *testing.T) {
	service := newTestService()

	categories, err := service.ListCategories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, categories, 8)
	assert.Equal(t, "marketing", categories[0].Slug)
	assert.Equal(t, "productivity", categories[len(categories)-1].Slug)
}
