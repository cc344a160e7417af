package domain

import "time"

// BlogPost is a static article teaser shown on the blog page.
// Excerpt is authored in Markdown.
type BlogPost struct {
	ID          int
	Title       string
	Excerpt     string
	PublishedAt time.Time
	Category    string
	Image       string
	ReadTime    string
}

// Testimonial is an alumni quote.
type Testimonial struct {
	ID     int
	Author string
	Role   string
	Quote  string
	Avatar string
}

// Rating is fixed; every testimonial on the site is shown with five stars.
func (Testimonial) Rating() int { return 5 }

// FeatureHighlight is one tile of a "why choose us" grid.
type FeatureHighlight struct {
	Icon        string
	Title       string
	Description string
}

// Stat is a headline number on the home hero.
type Stat struct {
	Label string
	Value string
}

// Asset describes a downloadable preview document.
type Asset struct {
	Title   string
	Pages   int
	Format  string
	Size    string
	Summary string
	Bullets []string
}
