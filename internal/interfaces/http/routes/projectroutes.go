package routes

import (
	"github.com/gin-gonic/gin"

	issuehandlers "tracker/internal/interfaces/http/handlers/issue"
	projecthandlers "tracker/internal/interfaces/http/handlers/project"
	"tracker/internal/interfaces/http/middleware"
)

type ProjectRouteConfig struct {
	ProjectHandler *projecthandlers.ProjectHandler
	IssueHandler   *issuehandlers.IssueHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProjectRoutes(api *gin.RouterGroup, config *ProjectRouteConfig) {
	projects := api.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.POST("", config.ProjectHandler.CreateProject)
		projects.GET("", config.ProjectHandler.ListProjects)

		// nested issue collection (before the bare /:id routes)
		projects.POST("/:id/issues", config.IssueHandler.CreateIssue)
		projects.GET("/:id/issues", config.IssueHandler.ListIssues)

		projects.GET("/:id", config.ProjectHandler.GetProject)
		projects.PUT("/:id", config.ProjectHandler.UpdateProject)
		projects.DELETE("/:id", config.ProjectHandler.DeleteProject)
	}
}
