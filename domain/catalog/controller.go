package catalog

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knobase/site-api/config/router"
	"github.com/knobase/site-api/internal/log"
	apperrors "github.com/knobase/site-api/pkg/errors"
	"github.com/knobase/site-api/pkg/ratelimit"
)

// NewTemplateController mounts the template browsing endpoints.
func NewTemplateController(logger *log.Logger, repository TemplateRepository) *router.RESTController {
	return router.NewVersionedRESTController(
		"TemplateController",
		"v1",
		"/templates",
		func(rs *router.RouterService, c *router.RESTController) {
			service := NewCatalogService(logger, repository)

			browseLimiter := createBrowseRateLimiter()

			rs.AddGetHandler(c, browseLimiter, "", listTemplatesHandler(service))
			rs.AddGetHandler(c, nil, ":slug", getTemplateHandler(service))
			rs.AddGetHandler(c, nil, ":slug/reviews", listReviewsHandler(service))
		},
	)
}

// NewCategoryController mounts the category browsing endpoints.
func NewCategoryController(logger *log.Logger, repository TemplateRepository) *router.RESTController {
	return router.NewVersionedRESTController(
		"CategoryController",
		"v1",
		"/categories",
		func(rs *router.RouterService, c *router.RESTController) {
			service := NewCatalogService(logger, repository)

			rs.AddGetHandler(c, nil, "", listCategoriesHandler(service))
			rs.AddGetHandler(c, nil, ":slug/templates", listCategoryTemplatesHandler(service))
		},
	)
}

func createBrowseRateLimiter() ratelimit.RateLimiter {
	// The storefront fires a listing request per filter change, so this
	// sits well above the signup limit.
	const browseRequestsPerMinute = 120

	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Requests: browseRequestsPerMinute,
		Window:   time.Minute,
	})
}

func listTemplatesHandler(service CatalogService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		filter := ListFilter{
			Category: ctx.Query("category"),
			Search:   ctx.Query("search"),
			Sort:     ctx.Query("sort"),
		}

		if raw := ctx.Query("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				return router.BadRequestResult("Invalid limit parameter", nil)
			}
			filter.Limit = limit
		}

		templates, err := service.ListTemplates(ctx.Request.Context(), filter)
		if err != nil {
			return catalogErrorResult(err)
		}

		return router.OKResult(gin.H{"templates": templates})
	}
}

func getTemplateHandler(service CatalogService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		template, err := service.GetTemplate(ctx.Request.Context(), ctx.Param("slug"))
		if err != nil {
			return catalogErrorResult(err)
		}

		return router.OKResult(gin.H{"template": template})
	}
}

func listReviewsHandler(service CatalogService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		reviews, err := service.ListReviews(ctx.Request.Context(), ctx.Param("slug"))
		if err != nil {
			return catalogErrorResult(err)
		}

		return router.OKResult(gin.H{"reviews": reviews})
	}
}

func listCategoriesHandler(service CatalogService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		categories, err := service.ListCategories(ctx.Request.Context())
		if err != nil {
			return catalogErrorResult(err)
		}

		return router.OKResult(gin.H{"categories": categories})
	}
}

func listCategoryTemplatesHandler(service CatalogService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		filter := ListFilter{Category: ctx.Param("slug")}

		templates, err := service.ListTemplates(ctx.Request.Context(), filter)
		if err != nil {
			return catalogErrorResult(err)
		}

		return router.OKResult(gin.H{"templates": templates})
	}
}

func catalogErrorResult(err error) *router.ServiceResult {
	return router.ErrorResult(
		apperrors.HTTPStatusCode(err),
		apperrors.GetHumanReadableMessage(err),
	)
}
