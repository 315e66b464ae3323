// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// package roster holds the in-memory account roster: the full user list
// loaded once per session, the page currently on screen and the prefix
// search over it.
package roster

import "github.com/toeirei/rideroster/internal/model"

// QueryPolicy decides how a non-empty search query interacts with paging.
type QueryPolicy int

const (
	// QueryResetPage pages the filtered result like the full roster and
	// returns to page 1 whenever the query changes.
	QueryResetPage QueryPolicy = iota
	// QueryLegacy shows the whole filtered result at once, recomputes the
	// page count from it and leaves the current page alone. Next and Prev
	// keep paging the full roster.
	QueryLegacy
)

// ParseQueryPolicy maps a config value to a QueryPolicy. Unknown values reset.
func ParseQueryPolicy(s string) QueryPolicy {
	if s == "legacy" {
		return QueryLegacy
	}
	return QueryResetPage
}

func (p QueryPolicy) String() string {
	if p == QueryLegacy {
		return "legacy"
	}
	return "reset"
}

// State is a read-only snapshot of the roster. Callers must not modify the
// slices it holds.
type State struct {
	AllUsers     []model.User
	VisibleUsers []model.User
	PageSize     int
	CurrentPage  int
	TotalPages   int
	Filtering    bool
}

// Cache is the roster cache. Create it with New; it is not safe for
// concurrent use.
type Cache struct {
	all       []model.User
	filtered  []model.User
	filtering bool
	visible   []model.User
	page      int
	total     int

	pagePolicy  PagePolicy
	queryPolicy QueryPolicy
}

// Option configures a Cache.
type Option = func(c *Cache)

// WithPagePolicy sets the boundary behaviour of Next and Prev.
func WithPagePolicy(p PagePolicy) Option {
	return func(c *Cache) { c.pagePolicy = p }
}

// WithQueryPolicy sets how search results are paged.
func WithQueryPolicy(p QueryPolicy) Option {
	return func(c *Cache) { c.queryPolicy = p }
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{page: 1, total: 1, visible: []model.User{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the roster and shows its first page.
func (c *Cache) Load(users []model.User) {
	c.all = users
	c.ShowAll()
}

// ShowAll drops any search result and shows the first page of the full roster.
func (c *Cache) ShowAll() {
	c.filtered = nil
	c.filtering = false
	c.page = 1
	c.total = TotalPages(len(c.all), PageSize)
	c.visible = PageSlice(c.all, c.page, PageSize)
}

// Search applies query to the full roster. An empty query is ShowAll.
func (c *Cache) Search(query string) {
	if query == "" {
		c.ShowAll()
		return
	}
	c.filtered = Filter(c.all, query)
	c.filtering = true
	c.total = TotalPages(len(c.filtered), PageSize)
	switch c.queryPolicy {
	case QueryLegacy:
		c.visible = c.filtered
	default:
		c.page = 1
		c.visible = PageSlice(c.filtered, c.page, PageSize)
	}
}

// Next moves one page forward.
func (c *Cache) Next() {
	c.turn(c.page + 1)
}

// Prev moves one page back.
func (c *Cache) Prev() {
	c.turn(c.page - 1)
}

func (c *Cache) turn(page int) {
	seq := c.paged()
	if c.pagePolicy == PageClamp {
		page = max(1, min(page, TotalPages(len(seq), PageSize)))
	}
	c.page = page
	c.visible = PageSlice(seq, c.page, PageSize)
}

// paged returns the sequence Next and Prev walk over.
func (c *Cache) paged() []model.User {
	if c.filtering && c.queryPolicy == QueryResetPage {
		return c.filtered
	}
	return c.all
}

// All returns the full roster.
func (c *Cache) All() []model.User { return c.all }

// Visible returns the users currently on screen.
func (c *Cache) Visible() []model.User { return c.visible }

// CurrentPage returns the 1-based current page.
func (c *Cache) CurrentPage() int { return c.page }

// TotalPages returns the page count of the sequence being shown.
func (c *Cache) TotalPages() int { return c.total }

// State returns a snapshot of the cache.
func (c *Cache) State() State {
	return State{
		AllUsers:     c.all,
		VisibleUsers: c.visible,
		PageSize:     PageSize,
		CurrentPage:  c.page,
		TotalPages:   c.total,
		Filtering:    c.filtering,
	}
}
