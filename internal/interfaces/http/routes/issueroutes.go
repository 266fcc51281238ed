package routes

import (
	"github.com/gin-gonic/gin"

	commenthandlers "tracker/internal/interfaces/http/handlers/comment"
	issuehandlers "tracker/internal/interfaces/http/handlers/issue"
	"tracker/internal/interfaces/http/middleware"
)

type IssueRouteConfig struct {
	IssueHandler   *issuehandlers.IssueHandler
	CommentHandler *commenthandlers.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupIssueRoutes(api *gin.RouterGroup, config *IssueRouteConfig) {
	issues := api.Group("/issues")
	issues.Use(config.AuthMiddleware.RequireAuth())
	{
		// action and nested endpoints before the bare /:id routes
		issues.PATCH("/:id/status", config.IssueHandler.ChangeStatus)
		issues.PATCH("/:id/assignee", config.IssueHandler.ChangeAssignee)
		issues.POST("/:id/comments", config.CommentHandler.AddComment)
		issues.GET("/:id/comments", config.CommentHandler.ListComments)

		issues.GET("/:id", config.IssueHandler.GetIssue)
		issues.PUT("/:id", config.IssueHandler.UpdateIssue)
		issues.DELETE("/:id", config.IssueHandler.DeleteIssue)
	}

	comments := api.Group("/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.DELETE("/:id", config.CommentHandler.DeleteComment)
	}
}
