package controllers

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cursoscarioca/webciclo/internal/app/forms"
	"github.com/cursoscarioca/webciclo/internal/app/models"
	"github.com/cursoscarioca/webciclo/internal/app/models/dto"
	"github.com/cursoscarioca/webciclo/internal/app/repositories"
	"github.com/cursoscarioca/webciclo/internal/app/services"
	"github.com/cursoscarioca/webciclo/internal/middleware"
	"github.com/cursoscarioca/webciclo/internal/pkg/apperrors"
	"github.com/cursoscarioca/webciclo/internal/pkg/filestorage"
	"github.com/cursoscarioca/webciclo/internal/pkg/logger"
)

// Form fields that carry uploaded images rather than text. The stored
// path replaces the file in the form before normalization.
const (
	coverImageField  = "imagem_curso"
	partnerLogoField = "parceiro_logo"
)

// CourseController handles the course offering endpoints
type CourseController struct {
	courseService *services.CourseService
	statusService *services.CourseStatusService
	storage       filestorage.FileStorage
}

// NewCourseController creates a new CourseController
func NewCourseController(
	courseService *services.CourseService,
	statusService *services.CourseStatusService,
	storage filestorage.FileStorage,
) *CourseController {
	return &CourseController{
		courseService: courseService,
		statusService: statusService,
		storage:       storage,
	}
}

// CreateCourse handles a new course offering submission
// @Summary Submit a course offering
// @Description Validates the submitted form, persists the offering and writes its CSV interchange file. Validation errors are returned all at once; warnings never block the submission.
// @Tags courses
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param titulo formData string true "Course title"
// @Param modalidade formData string true "Presencial, Online or Híbrido"
// @Success 201 {object} dto.APIResponse{data=dto.CourseSavedResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	form, err := c.parseForm(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, warnings, err := c.courseService.CreateCourse(ctx.Request.Context(), form, currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CourseSavedResponse{
		Course:   course,
		Warnings: warnings,
	}, "Curso cadastrado com sucesso"))
}

// UpdateCourse handles an edit of an existing offering
// @Summary Update a course offering
// @Description Re-validates the full form and replaces the stored offering, including all of its class sections and online delivery.
// @Tags courses
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseSavedResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	form, err := c.parseForm(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, warnings, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseSavedResponse{
		Course:   course,
		Warnings: warnings,
	}, "Curso atualizado com sucesso"))
}

// GetCourse retrieves a single offering
// @Summary Get a course offering
// @Description Returns the offering with its class sections and online delivery
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseOffering} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, ""))
}

// ListCourses lists offerings with optional filters
// @Summary List course offerings
// @Description Lists offerings, optionally filtered by modality, theme, free-text search or pending downstream insertion
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param modality query string false "Filter by modality"
// @Param theme query string false "Filter by theme"
// @Param organization query string false "Filter by organization"
// @Param search query string false "Free-text search on title and organization"
// @Param pending query bool false "Only offerings not yet inserted downstream"
// @Param inserted query bool false "Only offerings already inserted downstream"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var (
		courses []*models.CourseOffering
		err     error
	)

	switch {
	case ctx.Query("pending") == "true":
		courses, err = c.statusService.ListPending(ctx.Request.Context())
	case ctx.Query("inserted") == "true":
		courses, err = c.statusService.ListInserted(ctx.Request.Context())
	default:
		courses, err = c.courseService.ListCourses(ctx.Request.Context(), repositories.CourseFilter{
			Modality:     ctx.Query("modality"),
			Theme:        ctx.Query("theme"),
			Organization: ctx.Query("organization"),
			Search:       ctx.Query("search"),
		})
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseListResponse{
		Courses: courses,
		Total:   len(courses),
	}, ""))
}

// DeleteCourse removes an offering
// @Summary Delete a course offering
// @Description Removes the offering, its sub-entities and its uploaded images
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Curso removido com sucesso"))
}

// DuplicateCourse returns a pre-filled submission for an existing offering
// @Summary Prepare a duplicate submission
// @Description Returns the form field map of an offering so the staff screen can pre-fill a fresh submission from it
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Duplicate payload prepared"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/duplicate [get]
func (c *CourseController) DuplicateCourse(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	form, err := c.courseService.PrepareDuplicate(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(form, ""))
}

// UpdateCourseStatus toggles the downstream-insertion flag
// @Summary Update insertion status
// @Description Marks the offering as inserted into the downstream publication system, or back to pending
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/status [patch]
func (c *CourseController) UpdateCourseStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.CourseStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	var err error
	if *req.Inserted {
		err = c.statusService.MarkInserted(ctx.Request.Context(), id)
	} else {
		err = c.statusService.MarkPending(ctx.Request.Context(), id)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"inserted": *req.Inserted}, "Status atualizado com sucesso"))
}

// parseForm reads the submission as a field map. Multipart submissions may
// carry image uploads, which are stored and replaced by their paths.
func (c *CourseController) parseForm(ctx *gin.Context) (forms.Form, error) {
	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		mf, err := ctx.MultipartForm()
		if err != nil {
			return nil, apperrors.NewBadRequestError("formulário inválido")
		}
		form := forms.FromValues(url.Values(mf.Value))
		if err := c.saveUploads(form, mf); err != nil {
			return nil, err
		}
		return form, nil
	}

	if err := ctx.Request.ParseForm(); err != nil {
		return nil, apperrors.NewBadRequestError("formulário inválido")
	}
	return forms.FromValues(ctx.Request.PostForm), nil
}

func (c *CourseController) saveUploads(form forms.Form, mf *multipart.Form) error {
	for field, subDir := range map[string]string{
		coverImageField:  "covers",
		partnerLogoField: "logos",
	} {
		headers := mf.File[field]
		if len(headers) == 0 {
			continue
		}
		path, err := c.storage.SaveFileWithPath(headers[0], subDir)
		if err != nil {
			logger.Warn().Err(err).Str("field", field).Msg("Failed to store uploaded image")
			return apperrors.NewCustomError(apperrors.ErrInvalidUpload, err.Error())
		}
		form.Set(field, path)
	}
	return nil
}

func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Identificador de curso inválido")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

func currentUserID(ctx *gin.Context) int64 {
	if v, ok := ctx.Get(middleware.ContextUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
