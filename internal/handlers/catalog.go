package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speakuppartners/site/internal/catalog"
)

// CatalogGet serves the course catalog as JSON for integrations.
func CatalogGet(c echo.Context) error {
	courses := catalog.Courses()
	resp := CatalogResponse{Courses: make([]CourseResponse, 0, len(courses))}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, NewCourseResponse(course))
	}
	return c.JSON(http.StatusOK, resp)
}

// CourseGet serves one course by ID.
func CourseGet(c echo.Context) error {
	course, err := catalog.CourseByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Code: "course_not_found", Message: err.Error()})
	}
	return c.JSON(http.StatusOK, NewCourseResponse(course))
}
