// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package roster

import (
	"fmt"
	"testing"

	"github.com/toeirei/rideroster/internal/model"
)

func sevenUsers() []model.User {
	names := [][2]string{
		{"Ada", "Lovelace"}, {"Alan", "Turing"}, {"Grace", "Hopper"}, {"Linus", "Torvalds"},
		{"Barbara", "Liskov"}, {"Ken", "Thompson"}, {"Dennis", "Ritchie"},
	}
	users := make([]model.User, len(names))
	for i, n := range names {
		users[i] = model.User{ID: i + 1, FirstName: n[0], LastName: n[1], IsDriver: i%2 == 0}
	}
	return users
}

func ids(users []model.User) string {
	s := ""
	for _, u := range users {
		s += fmt.Sprintf("%d,", u.ID)
	}
	return s
}

func TestCache_SevenUsersScenario(t *testing.T) {
	c := New()
	c.Load(sevenUsers())

	if c.TotalPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", c.TotalPages())
	}
	if got := ids(c.Visible()); got != "1,2,3,4,5," {
		t.Fatalf("page 1 shows %s", got)
	}

	c.Next()
	if c.CurrentPage() != 2 {
		t.Fatalf("expected page 2, got %d", c.CurrentPage())
	}
	if got := ids(c.Visible()); got != "6,7," {
		t.Fatalf("page 2 shows %s", got)
	}
}

func TestCache_EmptyRosterHasOnePage(t *testing.T) {
	c := New()
	c.Load(nil)
	st := c.State()
	if st.TotalPages != 1 || st.CurrentPage != 1 || len(st.VisibleUsers) != 0 {
		t.Fatalf("unexpected empty state: %+v", st)
	}
	if st.PageSize != PageSize {
		t.Fatalf("unexpected page size %d", st.PageSize)
	}
}

func TestCache_ClampPolicy(t *testing.T) {
	c := New(WithPagePolicy(PageClamp))
	c.Load(sevenUsers())

	c.Prev()
	if c.CurrentPage() != 1 || len(c.Visible()) != 5 {
		t.Fatalf("prev on first page should stay put, page=%d", c.CurrentPage())
	}
	c.Next()
	c.Next()
	c.Next()
	if c.CurrentPage() != 2 || ids(c.Visible()) != "6,7," {
		t.Fatalf("next past the end should stay on the last page, page=%d", c.CurrentPage())
	}
}

func TestCache_ClipPolicy(t *testing.T) {
	c := New(WithPagePolicy(PageClip))
	c.Load(sevenUsers())

	c.Next()
	c.Next()
	if c.CurrentPage() != 3 || len(c.Visible()) != 0 {
		t.Fatalf("expected empty page 3, got page=%d visible=%d", c.CurrentPage(), len(c.Visible()))
	}
	c.Prev()
	c.Prev()
	c.Prev()
	if c.CurrentPage() != 0 || len(c.Visible()) != 0 {
		t.Fatalf("expected empty page 0, got page=%d visible=%d", c.CurrentPage(), len(c.Visible()))
	}
	c.Next()
	if ids(c.Visible()) != "1,2,3,4,5," {
		t.Fatalf("expected page 1 again, got %s", ids(c.Visible()))
	}
}

func TestCache_SearchResetsPage(t *testing.T) {
	users := append(sevenUsers(), sevenUsers()...)
	c := New()
	c.Load(users)
	c.Next()

	c.Search("a") // Ada, Alan twice
	st := c.State()
	if st.CurrentPage != 1 {
		t.Fatalf("expected page reset to 1, got %d", st.CurrentPage)
	}
	if st.TotalPages != 1 || len(st.VisibleUsers) != 4 || !st.Filtering {
		t.Fatalf("unexpected filtered state: %+v", st)
	}

	c.Search("")
	if c.State().Filtering || c.TotalPages() != 3 || len(c.Visible()) != 5 {
		t.Fatalf("empty query should show the full roster again")
	}
}

func TestCache_SearchPagesFilteredResult(t *testing.T) {
	var users []model.User
	for i := 1; i <= 12; i++ {
		users = append(users, model.User{ID: i, FirstName: "Sam", LastName: fmt.Sprint(i)})
	}
	users = append(users, model.User{ID: 99, FirstName: "Zed", LastName: "Z"})

	c := New()
	c.Load(users)
	c.Search("sam")
	if c.TotalPages() != 3 {
		t.Fatalf("expected 3 filtered pages, got %d", c.TotalPages())
	}
	c.Next()
	c.Next()
	if got := ids(c.Visible()); got != "11,12," {
		t.Fatalf("expected last filtered page, got %s", got)
	}
}

func TestCache_LegacyQueryPolicy(t *testing.T) {
	users := append(sevenUsers(), sevenUsers()...)
	c := New(WithQueryPolicy(QueryLegacy), WithPagePolicy(PageClip))
	c.Load(users)
	c.Next()

	c.Search("a")
	if c.CurrentPage() != 2 {
		t.Fatalf("legacy policy must keep the stale page, got %d", c.CurrentPage())
	}
	if c.TotalPages() != 1 || len(c.Visible()) != 4 {
		t.Fatalf("legacy policy shows the whole filtered result: total=%d visible=%d", c.TotalPages(), len(c.Visible()))
	}

	// Paging walks the full roster again.
	c.Next()
	if c.CurrentPage() != 3 || len(c.Visible()) != 4 {
		t.Fatalf("expected full-roster page 3, got page=%d visible=%d", c.CurrentPage(), len(c.Visible()))
	}
}
