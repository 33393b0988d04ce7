package routes

import (
	"github.com/eventmate/api-go/controllers"
	"github.com/eventmate/api-go/middleware"
	"github.com/eventmate/api-go/repositories"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	followerRepo := repositories.NewPostgresFollowerRepository(db)
	suggestionRepo := repositories.NewPostgresSuggestionRepository(db)
	userRepo := repositories.NewPostgresUserRepository(db)

	followerController := controllers.NewFollowerController(followerRepo, suggestionRepo, userRepo)

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupFollowerRoutes(protected, followerController)
	}
}
