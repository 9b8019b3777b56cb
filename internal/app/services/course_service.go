package services

import (
	"context"
	"fmt"

	"github.com/cursoscarioca/webciclo/internal/app/forms"
	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/app/repositories"
	"github.com/cursoscarioca/webciclo/internal/pkg/apperrors"
	"github.com/cursoscarioca/webciclo/internal/pkg/export"
	"github.com/cursoscarioca/webciclo/internal/pkg/filestorage"
	"github.com/cursoscarioca/webciclo/internal/pkg/logger"
)

// CourseService orchestrates the lifecycle of course offerings: it runs
// submissions through validation and normalization, persists the canonical
// record and writes the CSV interchange file.
type CourseService struct {
	courseRepo *repositories.CourseRepository
	validator  *forms.Validator
	normalizer *forms.Normalizer
	exporter   *export.CSVExporter
	storage    filestorage.FileStorage
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	exporter *export.CSVExporter,
	storage filestorage.FileStorage,
) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		validator:  forms.NewValidator(),
		normalizer: forms.NewNormalizer(),
		exporter:   exporter,
		storage:    storage,
	}
}

// CreateCourse validates and persists a new course offering. On validation
// failure every accumulated error is returned at once. Warnings never block
// persistence and are returned alongside the created record.
func (s *CourseService) CreateCourse(ctx context.Context, form forms.Form, createdBy int64) (*models.CourseOffering, []string, error) {
	result := s.validator.Validate(form)
	if !result.OK() {
		return nil, result.Warnings, apperrors.NewValidationError(result.Errors, result.Warnings)
	}

	course := s.normalizer.Normalize(form, result)
	course.CreatedBy = createdBy

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, result.Warnings, fmt.Errorf("failed to persist course: %w", err)
	}

	s.exportCSV(course)

	logger.Info().Int64("course_id", course.ID).Str("modality", string(course.Modality)).Msg("Course offering created")
	return course, result.Warnings, nil
}

// UpdateCourse validates the edited submission and replaces the stored
// offering, including a full replacement of its sub-entities. The
// pre-enhancement description of the stored record survives edits that do
// not re-post it.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, form forms.Form) (*models.CourseOffering, []string, error) {
	existing, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if form.Get("descricao_original") == "" && existing.OriginalDescription != "" {
		form.Set("descricao_original", existing.OriginalDescription)
	}

	result := s.validator.Validate(form)
	if !result.OK() {
		return nil, result.Warnings, apperrors.NewValidationError(result.Errors, result.Warnings)
	}

	course := s.normalizer.Normalize(form, result)
	course.ID = id
	course.CreatedBy = existing.CreatedBy
	if course.CoverImageRef == "" {
		course.CoverImageRef = existing.CoverImageRef
	}
	if course.PartnerLogoRef == "" && course.ExternalPartner {
		course.PartnerLogoRef = existing.PartnerLogoRef
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, result.Warnings, err
	}

	s.exportCSV(course)

	logger.Info().Int64("course_id", id).Msg("Course offering updated")
	return course, result.Warnings, nil
}

// PrepareDuplicate returns the form field map of a stored offering so the
// staff screen can pre-fill a fresh submission from it.
func (s *CourseService) PrepareDuplicate(ctx context.Context, id int64) (forms.Form, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return forms.FormFromCourse(course), nil
}

// GetCourse retrieves a course offering with its sub-entities
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.CourseOffering, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses retrieves course offerings matching the filter
func (s *CourseService) ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.CourseOffering, error) {
	return s.courseRepo.GetAll(ctx, filter)
}

// DeleteCourse removes an offering and its uploaded images
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Image cleanup is best effort; the record is already gone.
	if course.CoverImageRef != "" {
		if err := s.storage.DeleteFile(course.CoverImageRef); err != nil {
			logger.Warn().Err(err).Int64("course_id", id).Msg("Failed to delete cover image")
		}
	}
	if course.PartnerLogoRef != "" {
		if err := s.storage.DeleteFile(course.PartnerLogoRef); err != nil {
			logger.Warn().Err(err).Int64("course_id", id).Msg("Failed to delete partner logo")
		}
	}

	logger.Info().Int64("course_id", id).Msg("Course offering deleted")
	return nil
}

// exportCSV writes the interchange file. Failures are logged, not
// propagated: the offering is already persisted and the file can be
// regenerated.
func (s *CourseService) exportCSV(course *models.CourseOffering) {
	if s.exporter == nil {
		return
	}
	if _, err := s.exporter.WriteCourse(course); err != nil {
		logger.Warn().Err(err).Int64("course_id", course.ID).Msg("Failed to write CSV export")
	}
}
