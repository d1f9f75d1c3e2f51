package router

import (
	"github.com/Zaker237/projectboard/internal/handler"
	"github.com/Zaker237/projectboard/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	UserHandler    *handler.UserHandler
	ProjectHandler *handler.ProjectHandler
	BoardHandler   *handler.BoardHandler
	StepHandler    *handler.StepHandler
	CardHandler    *handler.CardHandler
	CommentHandler *handler.CommentHandler
}

func Setup(r *gin.Engine, deps Deps) {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Last-Event-ID", "X-Request-ID")
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RequestID())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	users := api.Group("/users")
	{
		users.GET("", deps.UserHandler.List)
		users.POST("", deps.UserHandler.Create)
		users.GET("/:id", deps.UserHandler.Get)
		users.PUT("/:id", deps.UserHandler.Update)
		users.DELETE("/:id", deps.UserHandler.Delete)
		users.GET("/:id/projects", deps.UserHandler.ListProjects)
		users.GET("/:id/steps", deps.UserHandler.ListSteps)
		users.GET("/:id/cards", deps.UserHandler.ListCards)
		users.GET("/:id/comments", deps.UserHandler.ListComments)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", deps.ProjectHandler.List)
		projects.POST("", deps.ProjectHandler.Create)
		projects.GET("/:id", deps.ProjectHandler.Get)
		projects.PUT("/:id", deps.ProjectHandler.Update)
		projects.DELETE("/:id", deps.ProjectHandler.Delete)
		projects.GET("/:id/cards", deps.ProjectHandler.ListCards)

		// Board columns: the ordered step list
		projects.GET("/:id/steps", deps.BoardHandler.ListSteps)
		projects.POST("/:id/steps", deps.BoardHandler.AddStep)
		projects.DELETE("/:id/steps/:step_id", deps.BoardHandler.RemoveStep)
		projects.PUT("/:id/steps/:step_id/position", deps.BoardHandler.MoveStep)
		projects.GET("/:id/steps/:step_id/cards", deps.BoardHandler.ListStepCards)
		projects.GET("/:id/events", deps.BoardHandler.Stream)

		// Membership
		projects.GET("/:id/members", deps.ProjectHandler.ListMembers)
		projects.POST("/:id/members", deps.ProjectHandler.AddMember)
		projects.PUT("/:id/members/:user_id", deps.ProjectHandler.UpdateMember)
		projects.DELETE("/:id/members/:user_id", deps.ProjectHandler.RemoveMember)
	}

	steps := api.Group("/steps")
	{
		steps.GET("", deps.StepHandler.List)
		steps.POST("", deps.StepHandler.Create)
		steps.GET("/:id", deps.StepHandler.Get)
		steps.PUT("/:id", deps.StepHandler.Update)
		steps.DELETE("/:id", deps.StepHandler.Delete)
	}

	cards := api.Group("/cards")
	{
		cards.GET("", deps.CardHandler.List)
		cards.POST("", deps.CardHandler.Create)
		cards.GET("/:id", deps.CardHandler.Get)
		cards.PUT("/:id", deps.CardHandler.Update)
		cards.DELETE("/:id", deps.CardHandler.Delete)
		cards.GET("/:id/comments", deps.CardHandler.ListComments)
	}

	comments := api.Group("/comments")
	{
		comments.GET("", deps.CommentHandler.List)
		comments.POST("", deps.CommentHandler.Create)
		comments.GET("/:id", deps.CommentHandler.Get)
		comments.PUT("/:id", deps.CommentHandler.Update)
		comments.DELETE("/:id", deps.CommentHandler.Delete)
	}
}
