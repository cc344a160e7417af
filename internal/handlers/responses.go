package handlers

import (
	"github.com/speakuppartners/site/internal/domain"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CourseResponse is the public JSON shape of a catalog course. Prices are
// given both as integers and formatted for display.
type CourseResponse struct {
	domain.Course
	PriceLabel           string `json:"price_label"`
	DiscountedPriceLabel string `json:"discounted_price_label,omitempty"`
}

// CatalogResponse is the body of GET /api/catalog.
type CatalogResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// NewCourseResponse maps a domain course to its response DTO.
func NewCourseResponse(c domain.Course) CourseResponse {
	resp := CourseResponse{Course: c, PriceLabel: c.Price.String()}
	if c.HasDiscount() {
		resp.DiscountedPriceLabel = c.DiscountedPrice.String()
	}
	return resp
}
