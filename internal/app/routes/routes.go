package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/alumni/internal/app/controllers"
)

// BasePath prefixes every API route
const BasePath = "/api/v1"

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	programController *controllers.MentorshipProgramController,
	userController *controllers.UserController,
	healthController *controllers.HealthController,
) {
	v1 := router.Group(BasePath)

	v1.GET("/health", healthController.Health)

	programs := v1.Group("/mentorship-program")
	{
		programs.POST("", programController.Create)
		programs.GET("", programController.FindAll)
		programs.GET("/:id", programController.FindOne)
		// first segment is the mentor type
		programs.GET("/:id/:mentorId", programController.FindByMentor)
		programs.PUT("/:id", programController.Update)
		programs.DELETE("/:id", programController.Remove)
	}

	users := v1.Group("/users")
	{
		users.POST("", userController.Create)
		users.GET("", userController.FindAll)
		users.GET("/:id", userController.FindOne)
		users.PUT("/:id", userController.Update)
		users.DELETE("/:id", userController.Remove)
	}
}
