package catalog

import (
	"slices"
	"time"

	"github.com/speakuppartners/site/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

var blogPosts = []domain.BlogPost{
	{
		ID:          1,
		Title:       "5 Tips Mengatasi Anxiety Saat Presentasi",
		Excerpt:     "Pelajari teknik sederhana untuk mengatasi *nervous* dan tampil percaya diri di depan audiens.",
		PublishedAt: date("2024-03-15"),
		Category:    "Tips & Trik",
		Image:       "https://images.unsplash.com/photo-1543269865-cbf427effbad?q=80&w=600&auto=format&fit=crop",
		ReadTime:    "5 min read",
	},
	{
		ID:          2,
		Title:       "Membangun Struktur Presentasi yang Kuat",
		Excerpt:     "Rahasia membuat presentasi yang mudah diikuti dan **memorable** bagi audiens.",
		PublishedAt: date("2024-03-10"),
		Category:    "Presentation",
		Image:       "https://images.unsplash.com/photo-1581094794329-c8112a89af12?q=80&w=600&auto=format&fit=crop",
		ReadTime:    "7 min read",
	},
	{
		ID:          3,
		Title:       "Storytelling dalam Public Speaking",
		Excerpt:     "Gunakan kekuatan cerita untuk membuat presentasi Anda lebih berkesan.",
		PublishedAt: date("2024-03-05"),
		Category:    "Storytelling",
		Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=600&auto=format&fit=crop",
		ReadTime:    "6 min read",
	},
}

var testimonials = []domain.Testimonial{
	{
		ID:     1,
		Author: "Sarah Wijaya",
		Role:   "Marketing Manager",
		Quote:  "Setelah ikut kursus ini, presentasi saya di kantor selalu mendapat apresiasi!",
		Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?q=80&w=100&auto=format&fit=crop",
	},
	{
		ID:     2,
		Author: "Budi Santoso",
		Role:   "Fresh Graduate",
		Quote:  "Dari grogi sampai sekarang bisa presentasi dengan percaya diri. Recommended banget!",
		Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=100&auto=format&fit=crop",
	},
}

var features = []domain.FeatureHighlight{
	{Icon: "🎯", Title: "Personal Coaching", Description: "Dapatkan feedback langsung dari coach profesional"},
	{Icon: "📚", Title: "Materi Lengkap", Description: "Akses seumur hidup ke semua materi dan update"},
	{Icon: "👥", Title: "Komunitas Eksklusif", Description: "Bergabung dengan komunitas pembelajar lainnya"},
	{Icon: "📱", Title: "Flexible Learning", Description: "Belajar kapan saja, di mana saja melalui platform kami"},
}

var aboutPillars = []domain.FeatureHighlight{
	{Icon: "👨‍🏫", Title: "Coach Berpengalaman", Description: "Dibimbing oleh profesional dengan pengalaman lebih dari 10 tahun"},
	{Icon: "📈", Title: "Metode Terbukti", Description: "Kurikulum yang telah membantu 1,200+ alumni sukses"},
	{Icon: "🤝", Title: "Komunitas Supportif", Description: "Bergabung dengan komunitas pembelajar yang saling mendukung"},
}

var stats = []domain.Stat{
	{Label: "Alumni", Value: "1.2k+"},
	{Label: "Rating", Value: "4.9/5"},
	{Label: "Success Rate", Value: "98%"},
}

// PreviewEbook is the single free asset offered on the course-preview page.
var PreviewEbook = domain.Asset{
	Title:   "Public Speaking Basics",
	Pages:   15,
	Format:  "PDF",
	Size:    "2.4 MB",
	Summary: "Pelajari dasar-dasar public speaking dan teknik mengatasi grogi",
	Bullets: []string{
		"15 halaman materi premium",
		"Teknik dasar public speaking",
		"Tips mengatasi grogi",
		"Contoh struktur presentasi",
	},
}

// PreviewOutline lists what the flagship course teaches, as shown on the
// preview page.
var PreviewOutline = []string{
	"Teknik mengatasi nervous dan grogi",
	"Struktur presentasi yang efektif",
	"Seni storytelling dalam public speaking",
	"Body language dan vocal variety",
}

// PreviewMethods lists the flagship course's teaching formats.
var PreviewMethods = []string{
	"Video pembelajaran interaktif",
	"Live coaching session",
	"Practice assignment",
	"Community support",
}

// BlogPosts returns the articles, newest first.
func BlogPosts() []domain.BlogPost { return slices.Clone(blogPosts) }

// Testimonials returns the alumni quotes.
func Testimonials() []domain.Testimonial { return slices.Clone(testimonials) }

// Features returns the home page "why choose us" grid.
func Features() []domain.FeatureHighlight { return slices.Clone(features) }

// AboutPillars returns the about page highlights.
func AboutPillars() []domain.FeatureHighlight { return slices.Clone(aboutPillars) }

// Stats returns the hero statistics.
func Stats() []domain.Stat { return slices.Clone(stats) }
