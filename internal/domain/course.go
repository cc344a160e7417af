package domain

// DefaultDiscountedPrice is shown in the registration modal when the course
// being enrolled in carries no discounted price of its own.
const DefaultDiscountedPrice Rupiah = 649000

// Course is a purchasable offering in the catalog.
type Course struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           Rupiah   `json:"price"`
	DiscountedPrice Rupiah   `json:"discounted_price,omitempty"`
	Duration        string   `json:"duration"`
	Level           string   `json:"level"`
	Tag             string   `json:"tag"`
	Features        []string `json:"features"`
	Image           string   `json:"image"`
}

// HasDiscount reports whether the course is on sale below its list price.
func (c Course) HasDiscount() bool {
	return c.DiscountedPrice > 0 && c.DiscountedPrice < c.Price
}

// EnrollmentContext maps the course onto the narrower record the
// registration modal displays.
func (c Course) EnrollmentContext() EnrollmentContext {
	discounted := c.DiscountedPrice
	if !c.HasDiscount() {
		discounted = DefaultDiscountedPrice
	}
	return EnrollmentContext{
		CourseID:        c.ID,
		Title:           c.Title,
		Price:           c.Price,
		DiscountedPrice: discounted,
	}
}

// EnrollmentContext is the minimal view of a Course that an open
// registration modal needs: what is being bought and for how much.
type EnrollmentContext struct {
	CourseID        string
	Title           string
	Price           Rupiah
	DiscountedPrice Rupiah
}
