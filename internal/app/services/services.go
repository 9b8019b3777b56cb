package services

import (
	"github.com/cursoscarioca/webciclo/internal/app/repositories"
	"github.com/cursoscarioca/webciclo/internal/pkg/auth"
	"github.com/cursoscarioca/webciclo/internal/pkg/export"
	"github.com/cursoscarioca/webciclo/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	CourseService       *CourseService
	CourseStatusService *CourseStatusService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	exporter *export.CSVExporter,
	storage filestorage.FileStorage,
) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService),
		CourseService:       NewCourseService(repos.CourseRepository, exporter, storage),
		CourseStatusService: NewCourseStatusService(repos.CourseRepository),
	}
}
