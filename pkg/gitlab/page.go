package gitlab

// Page size limits imposed by the GitLab API.
const (
	// MaxPerPage is the largest page size the server accepts. Requesting
	// more does not error — the server silently truncates to this value, so
	// WithPerPage clamps rather than rejecting.
	MaxPerPage = 100

	// DefaultPerPage is the page size the server applies when per_page is
	// not sent.
	DefaultPerPage = 20
)

// PageOptions describes a position in a paginated collection: a page number
// (omitted from the query when zero) and a per-page size clamped to
// [1, MaxPerPage].
type PageOptions struct {
	Page    int `json:"page,omitempty"     yaml:"page,omitempty"`
	PerPage int `json:"per_page,omitempty" yaml:"per_page,omitempty"`
}

// NewPageOptions creates page options with no explicit page and the maximum
// per-page size, the usual starting point for a full collection walk.
func NewPageOptions() *PageOptions {
	return &PageOptions{PerPage: MaxPerPage}
}

// WithPage sets the page number.
func (p *PageOptions) WithPage(page int) *PageOptions {
	p.Page = page

	return p
}

// WithPerPage sets the page size, clamped to [1, MaxPerPage].
func (p *PageOptions) WithPerPage(perPage int) *PageOptions {
	switch {
	case perPage > MaxPerPage:
		p.PerPage = MaxPerPage
	case perPage < 1:
		p.PerPage = 1
	default:
		p.PerPage = perPage
	}

	return p
}

// ToQuery renders the descriptor as a Query fragment: "page" only when set,
// "per_page" always once set.
func (p *PageOptions) ToQuery() *Query {
	query := NewQuery()

	if p.Page > 0 {
		query.AddInt("page", p.Page)
	}

	if p.PerPage > 0 {
		query.AddInt("per_page", p.PerPage)
	}

	return query
}
