package site

import (
	"fmt"

	"github.com/speakuppartners/site/internal/domain"
)

// PageID names a top-level view. The string values are the routing contract
// shared by the navbar, the footer and the action endpoints.
type PageID string

const (
	PageHome          PageID = "home"
	PageCourses       PageID = "courses"
	PageCoursePreview PageID = "course-preview"
	PageBlog          PageID = "blog"
	PageAbout         PageID = "about"
)

var pages = []PageID{PageHome, PageCourses, PageCoursePreview, PageBlog, PageAbout}

// Pages returns every page identifier in navigation order.
func Pages() []PageID {
	out := make([]PageID, len(pages))
	copy(out, pages)
	return out
}

// ParsePage converts a wire token into a PageID.
func ParsePage(s string) (PageID, error) {
	for _, p := range pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownPage, s)
}

// NavItem is one entry of the navigation shell.
type NavItem struct {
	Page  PageID
	Label string
}

var navItems = []NavItem{
	{Page: PageHome, Label: "Beranda"},
	{Page: PageCourses, Label: "Kursus"},
	{Page: PageCoursePreview, Label: "Preview Kursus"},
	{Page: PageBlog, Label: "Blog"},
	{Page: PageAbout, Label: "Tentang"},
}

// NavItems returns the fixed navigation targets.
func NavItems() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}

// Title is the human label of a page, used for the document title.
func (p PageID) Title() string {
	for _, item := range navItems {
		if item.Page == p {
			return item.Label
		}
	}
	return ""
}
