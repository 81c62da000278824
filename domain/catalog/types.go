package catalog

// Sort orders accepted by ListTemplates. Anything else falls back to
// SortPopular.
const (
	SortPopular   = "popular"
	SortNewest    = "newest"
	SortRating    = "rating"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

type Creator struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Template is a purchasable/forkable agent configuration bundle listed
// in the marketplace. Read-only reference data; nothing in this service
// creates or mutates templates.
type Template struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Price            int      `json:"price"`
	Currency         string   `json:"currency"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	ThumbnailURL     string   `json:"thumbnail_url"`
	Screenshots      []string `json:"screenshots"`
	Creator          Creator  `json:"creator"`
	AgentsCount      int      `json:"agents_count"`
	DocsCount        int      `json:"docs_count"`
	WorkflowsCount   int      `json:"workflows_count"`
	Featured         bool     `json:"featured"`
	Trending         bool     `json:"trending"`
	Tags             []string `json:"tags"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

type Review struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Body   string `json:"body"`
	Date   string `json:"date"`
}

type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Count       int    `json:"count"`
}

// ListFilter narrows and orders a template listing. Zero values mean
// no filtering, default sort, no limit.
type ListFilter struct {
	Category string
	Search   string
	Sort     string
	Limit    int
}
