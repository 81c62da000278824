package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/knobase/site-api/config"
	"github.com/knobase/site-api/config/router"
	"github.com/knobase/site-api/domain/catalog"
	"github.com/knobase/site-api/internal/log"
	"github.com/stretchr/testify/suite"
)

type CatalogAPITestSuite struct {
	suite.Suite
	server  *httptest.Server
	baseURL string
}

func (suite *CatalogAPITestSuite) SetupSuite() {
	logger := log.NewLoggerWithJSONOutput()

	appConfig := &config.ApplicationConfig{Logger: logger}
	appConfig.RouterService = router.CreateRouterService(logger, nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	repository := catalog.NewStaticRepository()
	appConfig.RouterService.MountController(catalog.NewTemplateController(logger, repository))
	appConfig.RouterService.MountController(catalog.NewCategoryController(logger, repository))

	suite.server = httptest.NewServer(appConfig.RouterService.GetEngine())
	suite.baseURL = suite.server.URL
}

func (suite *CatalogAPITestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
}

func (suite *CatalogAPITestSuite) getJSON(path string) (*http.Response, map[string]interface{}) {
	resp, err := http.Get(suite.baseURL + path)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))

	return resp, response
}

func (suite *CatalogAPITestSuite) TestListTemplates() {
	resp, response := suite.getJSON("/v1/templates")

	suite.Equal(http.StatusOK, resp.StatusCode)

	templates := response["templates"].([]interface{})
	suite.Len(templates, 9)

	// Default order is by review count.
	first := templates[0].(map[string]interface{})
	suite.Equal("meeting-notes-automator", first["slug"])
}

func (suite *CatalogAPITestSuite) TestListTemplatesFiltered() {
	resp, response := suite.getJSON("/v1/templates?category=marketing&sort=price-low&limit=1")

	suite.Equal(http.StatusOK, resp.StatusCode)

	templates := response["templates"].([]interface{})
	suite.Require().Len(templates, 1)

	first := templates[0].(map[string]interface{})
	suite.Equal("social-media-manager", first["slug"])
}

func (suite *CatalogAPITestSuite) TestListTemplatesBadLimit() {
	resp, response := suite.getJSON("/v1/templates?limit=abc")

	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	suite.Equal("Invalid limit parameter", response["error"])
}

func (suite *CatalogAPITestSuite) TestGetTemplate() {
	resp, response := suite.getJSON("/v1/templates/seo-content-agent")

	suite.Equal(http.StatusOK, resp.StatusCode)

	template := response["template"].(map[string]interface{})
	suite.Equal("SEO Content Agent Team", template["name"])
	suite.Equal("marketing", template["category"])

	creator := template["creator"].(map[string]interface{})
	suite.Equal("Sarah Chen", creator["name"])
}

func (suite *CatalogAPITestSuite) TestGetTemplateNotFound() {
	resp, response := suite.getJSON("/v1/templates/does-not-exist")

	suite.Equal(http.StatusNotFound, resp.StatusCode)
	suite.Equal("Template not found", response["error"])
}

func (suite *CatalogAPITestSuite) TestListReviews() {
	resp, response := suite.getJSON("/v1/templates/seo-content-agent/reviews")

	suite.Equal(http.StatusOK, resp.StatusCode)

	reviews := response["reviews"].([]interface{})
	suite.Len(reviews, 4)
}

func (suite *CatalogAPITestSuite) TestListReviewsEmptyForUnknownSlug() {
	resp, response := suite.getJSON("/v1/templates/does-not-exist/reviews")

	suite.Equal(http.StatusOK, resp.StatusCode)

	reviews := response["reviews"].([]interface{})
	suite.Empty(reviews)
}

func (suite *CatalogAPITestSuite) TestListCategories() {
	resp, response := suite.getJSON("/v1/categories")

	suite.Equal(http.StatusOK, resp.StatusCode)

	categories := response["categories"].([]interface{})
	suite.Len(categories, 8)
}

func (suite *CatalogAPITestSuite) TestListTemplatesByCategory() {
	resp, response := suite.getJSON("/v1/categories/legal/templates")

	suite.Equal(http.StatusOK, resp.StatusCode)

	templates := response["templates"].([]interface{})
	suite.Require().Len(templates, 1)

	first := templates[0].(map[string]interface{})
	suite.Equal("legal-contract-reviewer", first["slug"])
}

func TestCatalogAPITestSuite(t *testing.T) {
	suite.Run(t, new(CatalogAPITestSuite))
}
