package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cursoscarioca/webciclo/internal/app/controllers"
	"github.com/cursoscarioca/webciclo/internal/app/models/dto"
	"github.com/cursoscarioca/webciclo/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
			courses.GET("/:id/duplicate", courseController.DuplicateCourse)
			courses.PATCH("/:id/status", courseController.UpdateCourseStatus)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})

	// Swagger routes are set up in bootstrap.go already
}
