package app

import (
	"interview_prep_backend/docs"
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/middleware"
	"interview_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	router.GET("/api/health", c.health.HealthCheck)

	// 2. 需要授权的路由
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		answers := api.Group("/answers")
		{
			answers.POST("", c.answer.SubmitAnswer)
			answers.GET("/:questionId", c.answer.GetAnswer)
		}

		api.GET("/dashboard", c.dashboard.GetDashboard)

		api.GET("/questions", c.question.ListQuestions)

		sets := api.Group("/question-sets")
		{
			sets.POST("/generate", c.question.GenerateQuestionSet)
			sets.GET("/:id/questions", c.question.ListQuestionsBySet)
		}
	}
}
