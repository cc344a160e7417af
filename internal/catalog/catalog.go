// Package catalog is the single source of the site's static content:
// courses, blog posts, testimonials and feature highlights.
//
// Every accessor returns a copy, so pages can never mutate shared data.
package catalog

import (
	"fmt"
	"slices"

	"github.com/speakuppartners/site/internal/domain"
)

// FlagshipID is the course presented on the course-preview page.
const FlagshipID = "public-speaking-mastery"

var courses = []domain.Course{
	{
		ID:              FlagshipID,
		Title:           "Public Speaking Mastery",
		Description:     "Kuasai seni berbicara di depan umum dengan teknik teruji. Dari dasar hingga advanced.",
		Price:           1299000,
		DiscountedPrice: 649000,
		Duration:        "6 Minggu",
		Level:           "Semua Level",
		Tag:             "Bestseller",
		Features:        []string{"Video Materi", "Live Coaching", "Sertifikat", "Group Support"},
		Image:           "https://images.unsplash.com/photo-1580519542036-c47de6196ba5?q=80&w=1200&auto=format&fit=crop",
	},
	{
		ID:              "presentation-powerhouse",
		Title:           "Presentation Powerhouse",
		Description:     "Belajar membuat presentasi yang memukau dengan storytelling dan visual impact.",
		Price:           899000,
		DiscountedPrice: 449000,
		Duration:        "4 Minggu",
		Level:           "Intermediate",
		Tag:             "New",
		Features:        []string{"Template Slides", "One-on-One Feedback", "Portfolio Review"},
		Image:           "https://images.unsplash.com/photo-1552664730-d307ca884978?q=80&w=1200&auto=format&fit=crop",
	},
	{
		ID:              "confident-communication",
		Title:           "Confident Communication",
		Description:     "Tingkatkan kepercayaan diri dalam berkomunikasi untuk karir dan kehidupan sosial.",
		Price:           1499000,
		DiscountedPrice: 749000,
		Duration:        "8 Minggu",
		Level:           "Pemula",
		Tag:             "Most Popular",
		Features:        []string{"Role Playing", "Real Practice", "Personality Assessment", "Lifetime Access"},
		Image:           "https://images.unsplash.com/photo-1543269865-cbf427effbad?q=80&w=1200&auto=format&fit=crop",
	},
}

// featuredCount is how many catalog courses the home page curates.
const featuredCount = 2

// Courses returns the full catalog in display order.
func Courses() []domain.Course {
	out := make([]domain.Course, len(courses))
	for i, c := range courses {
		out[i] = cloneCourse(c)
	}
	return out
}

// FeaturedCourses returns the curated subset shown on the home page.
func FeaturedCourses() []domain.Course {
	return Courses()[:featuredCount]
}

// Flagship returns the course the preview page describes.
func Flagship() domain.Course {
	c, err := CourseByID(FlagshipID)
	if err != nil {
		panic(err)
	}
	return c
}

// CourseByID looks a course up by its slug.
func CourseByID(id string) (domain.Course, error) {
	for _, c := range courses {
		if c.ID == id {
			return cloneCourse(c), nil
		}
	}
	return domain.Course{}, fmt.Errorf("%w: %q", domain.ErrCourseNotFound, id)
}

func cloneCourse(c domain.Course) domain.Course {
	c.Features = slices.Clone(c.Features)
	return c
}
