package dto

import "github.com/cursoscarioca/webciclo/internal/app/models"

// CourseSavedResponse is returned after a successful create or update.
// Warnings carry the non-blocking validation notices of the submission.
type CourseSavedResponse struct {
	Course   *models.CourseOffering `json:"course"`
	Warnings []string               `json:"warnings,omitempty"`
}

// CourseListResponse wraps the offerings matching a listing query
type CourseListResponse struct {
	Courses []*models.CourseOffering `json:"courses"`
	Total   int                      `json:"total" example:"12"`
}

// CourseStatusRequest toggles the downstream-insertion flag of an offering
type CourseStatusRequest struct {
	Inserted *bool `json:"inserted" binding:"required" example:"true"`
}
