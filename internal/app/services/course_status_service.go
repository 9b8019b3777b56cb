package services

import (
	"context"

	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/app/repositories"
	"github.com/cursoscarioca/webciclo/internal/pkg/logger"
)

// CourseStatusService tracks which offerings have already been inserted
// into the downstream publication system. The flag is keyed purely by
// offering id.
type CourseStatusService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseStatusService creates a new course status service instance
func NewCourseStatusService(courseRepo *repositories.CourseRepository) *CourseStatusService {
	return &CourseStatusService{
		courseRepo: courseRepo,
	}
}

// MarkInserted flags an offering as inserted downstream
func (s *CourseStatusService) MarkInserted(ctx context.Context, id int64) error {
	if err := s.courseRepo.SetInserted(ctx, id, true); err != nil {
		return err
	}
	logger.Info().Int64("course_id", id).Msg("Course offering marked as inserted")
	return nil
}

// MarkPending clears the downstream-insertion flag of an offering
func (s *CourseStatusService) MarkPending(ctx context.Context, id int64) error {
	if err := s.courseRepo.SetInserted(ctx, id, false); err != nil {
		return err
	}
	logger.Info().Int64("course_id", id).Msg("Course offering marked as pending")
	return nil
}

// ListPending returns the offerings not yet inserted downstream
func (s *CourseStatusService) ListPending(ctx context.Context) ([]*models.CourseOffering, error) {
	return s.courseRepo.GetAll(ctx, repositories.CourseFilter{Pending: true})
}

// ListInserted returns the offerings already inserted downstream
func (s *CourseStatusService) ListInserted(ctx context.Context) ([]*models.CourseOffering, error) {
	return s.courseRepo.GetAll(ctx, repositories.CourseFilter{Inserted: true})
}
